package config

type (
	//TableCfg is the container for other table config sections
	TableCfg struct {
		Log       LogTableCfg
		IOC       IOCTableCfg
		Reference ReferenceTableCfg
	}

	//LogTableCfg contains the configuration for database logging
	LogTableCfg struct {
		LogTable string `default:"logs"`
	}

	//IOCTableCfg contains the names of the indicator corpus collections
	IOCTableCfg struct {
		IOCTable    string `default:"iocs"`
		SourceTable string `default:"ioc_sources"`
	}

	//ReferenceTableCfg contains the names of the read-only reference
	//data collections used for enrichment
	ReferenceTableCfg struct {
		LocationTable     string `default:"location"`
		NetworkTable      string `default:"network"`
		OrganizationTable string `default:"organization"`
	}
)
