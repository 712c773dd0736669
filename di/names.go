package di

// ComponentNames lists the keys bootstrap registers components under.
type ComponentNames struct {
	Config  string
	Logger  string
	Filters string
	Params  string
	Util    string
}

// Names contains the registered component keys.
var Names = ComponentNames{
	Config:  "config",
	Logger:  "logger",
	Filters: "filters",
	Params:  "params",
	Util:    "util",
}
