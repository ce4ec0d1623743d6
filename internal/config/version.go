package config

// Version is the go-web-kit release version. It is the default for
// App.Version when no other source provides one.
const Version = "0.3.1"
