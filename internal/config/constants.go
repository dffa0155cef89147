package config

const (
	// DefaultEnvFile is the env file loaded when --env is not given.
	DefaultEnvFile = ".env"
	// FixtureExt is the extension of fixture files.
	FixtureExt = ".json"
	// ReportExt is the extension of written report files.
	ReportExt = ".json"
	// BatteryReportName is the report name used for a full battery run.
	BatteryReportName = "all_tests"
	// ResultsDirPerm is the permission used when creating the results directory.
	ResultsDirPerm = 0o755
	// ReportFilePerm is the permission used for written report files.
	ReportFilePerm = 0o644
)
