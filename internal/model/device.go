package model

import "time"

// RunStatus represents the current state of an analysis run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// DeviceRecord is one raw inventory row as produced by the importer.
// All fields are free text exactly as found in the source; nothing is
// validated at this stage.
type DeviceRecord struct {
	SheetName      string `json:"sheet_name" csv:"sheet_name"`
	DeviceName     string `json:"device_name" csv:"device_name"`
	SystemLocation string `json:"system_location" csv:"system_location"`
	Tenant         string `json:"tenant" csv:"tenant"`
	Region         string `json:"region" csv:"region"`
	ManagementIP   string `json:"management_ip" csv:"management_ip"`
}

// Run represents a single batch analysis run.
type Run struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"` // input file path
	Status     RunStatus `json:"status"`
	Devices    int       `json:"devices"`
	Validated  int       `json:"validated"`
	Rejected   int       `json:"rejected"`
	CreatedAt  time.Time `json:"created_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
}
