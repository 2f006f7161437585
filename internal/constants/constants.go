package constants

const (
	AppName    = "sfputil"
	AppVersion = "2.0"
)

const (
	ExitCodeOK             = 0
	ExitCodePrivilege      = 1
	ExitCodePlatformLoad   = 2
	ExitCodePortTableLoad  = 3
	ExitCodeInvalidPort    = 4
	ExitCodeNotImplemented = 5
	ExitCodeFailure        = 6
)

const (
	DefaultLogicalPortPrefix = "Ethernet"
	DefaultLogLevel          = "info"
)

const (
	DriverSysfs   = "sysfs"
	DriverHTTP    = "http"
	DriverVirtual = "virtual"
)

const (
	FilePerm    = 0755
	LogFilePerm = 0644
)

var (
	DefaultIfaceDataExclude = []string{
		"EncodingCodes",
		"ExtIdentOfTypeOfTransceiver",
		"NominalSignallingRate(UnitsOf100Mbd)",
	}
	DefaultDOMDataExclude = []string{
		"AwThresholds",
		"StatusControl",
	}
)
