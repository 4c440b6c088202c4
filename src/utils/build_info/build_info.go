package build_info

// Set through ldflags upon release
var (
	Version   = "dev"
	BuildDate = "unknown"
)
