package utils

// Set at build time with -ldflags "-X ...utils.version=x.y.z"
var version = "dev"

func GetVersion() string {
	return version
}
