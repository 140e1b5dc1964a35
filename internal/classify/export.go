package classify

// ExportRow is the flattened CSV shape of one enriched device.
type ExportRow struct {
	Sheet          string `csv:"sheet"`
	DeviceName     string `csv:"device_name"`
	SystemLocation string `csv:"system_location"`
	Tenant         string `csv:"tenant"`
	ManagementIP   string `csv:"management_ip"`

	Validated   bool   `csv:"validated"`
	Country     string `csv:"country"`
	State       string `csv:"state"`
	StateCode   string `csv:"state_code"`
	City        string `csv:"city"`
	WorldRegion string `csv:"world_region"`
	Confidence  int    `csv:"confidence"`

	Jurisdiction string `csv:"jurisdiction"`
	SiteType     string `csv:"site_type"`
	SiteName     string `csv:"site_name"`
	Pod          string `csv:"pod"`
	Stack        string `csv:"stack"`
	DeviceRole   string `csv:"device_role"`
	Vendor       string `csv:"vendor"`
	HARole       string `csv:"ha_role"`
	HAPartner    string `csv:"ha_partner"`
	HasHA        bool   `csv:"has_ha"`
	ParseScore   int    `csv:"parse_score"`
}

// ExportRow flattens the result for CSV export.
func (r Result) ExportRow() ExportRow {
	return ExportRow{
		Sheet:          r.Device.SheetName,
		DeviceName:     r.Device.DeviceName,
		SystemLocation: r.Device.SystemLocation,
		Tenant:         r.Device.Tenant,
		ManagementIP:   r.Device.ManagementIP,

		Validated:   r.Location.Validated,
		Country:     r.Location.Country,
		State:       r.Location.State,
		StateCode:   r.Location.StateCode,
		City:        r.Location.City,
		WorldRegion: string(r.Location.WorldRegion),
		Confidence:  r.Location.Confidence,

		Jurisdiction: r.Parse.Jurisdiction,
		SiteType:     r.Parse.SiteType,
		SiteName:     r.Parse.SiteName,
		Pod:          r.Parse.Pod,
		Stack:        r.Parse.Stack,
		DeviceRole:   r.Parse.DeviceRole,
		Vendor:       r.Parse.Vendor,
		HARole:       r.Parse.HARole,
		HAPartner:    r.Parse.HAPartner,
		HasHA:        r.Parse.HasHA,
		ParseScore:   r.Parse.Confidence,
	}
}
