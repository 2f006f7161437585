package constants

const (
	DefaultLogfilePath  = "/var/log/sfputil/sfputil.log"
	DefaultPlatformRoot = "/usr/share/sonic/device"
	MachineConfPath     = "/host/machine.conf"
)

const (
	PluginsDir         = "plugins"
	PluginDescriptor   = "sfputil.yaml"
	PortConfigFileName = "port_config.ini"
)
