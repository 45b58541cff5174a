package build

// Version is stamped at release time via -ldflags "-X ...build.Version=v1.2.3".
var Version = "dev"
