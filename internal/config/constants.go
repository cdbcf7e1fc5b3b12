package config

// ConfigFileName is the sidecar configuration looked up next to the sources.
const ConfigFileName = "tsplus.config.json"

// ConfigFileNames are all recognized sidecar file names, in lookup order.
var ConfigFileNames = []string{"tsplus.config.json", "tsplus.config.yaml", "tsplus.config.yml"}

// Base names of synthesized identifiers. Each gets a _N suffix that keeps it
// unique within the file.
const (
	ImportAliasBase   = "tsplus_module"
	FileNameVarBase   = "fileName"
	DerivationVarBase = "derived"
)

// TraceParameterName is the name of the trailing trace-carrier parameter.
const TraceParameterName = "__tsplusTrace"

// NotImplementedMessage is thrown at run time by failed derivations.
const NotImplementedMessage = "Not Implemented"
