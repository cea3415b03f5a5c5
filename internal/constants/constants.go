// Package constants holds all the values that are shared between packages but
// do not belong to any one of them.
package constants

// LibraryName contains the main name of this library
const LibraryName = "py-app-standalone"

// CommandName holds the name of the command that users invoke
const CommandName = "py-app-standalone"

// InternalConfigNamespace holds the appdata directory name under which we store our config
const InternalConfigNamespace = "py-app-standalone"

// InternalConfigFileName is the name of the sqlite file backing the config instance
const InternalConfigFileName = "config.db"

// ConfigEnvVarName is the env var used to override the config dir that is used
const ConfigEnvVarName = "PYAPP_CONFIGDIR"

// LogBuildVerboseEnvVarName is the env var that lets delegated tool output through to the log
const VerboseEnvVarName = "VERBOSE"

// NonInteractiveEnvVarName is the env var that forces prompts to their default choice
const NonInteractiveEnvVarName = "PYAPP_NONINTERACTIVE"

// UvExeEnvVarName is the env var that overrides where we look for the uv executable
const UvExeEnvVarName = "PYAPP_UV"

// CPUProfileEnvVarName is the env var that enables CPU profiling for the invocation
const CPUProfileEnvVarName = "PYAPP_PROF"

// RollbarTokenEnvVarName enables error reporting when set; reporting is off without it
const RollbarTokenEnvVarName = "PYAPP_ROLLBAR_TOKEN"

// DisableErrorReportingEnvVarName explicitly disables error reporting
const DisableErrorReportingEnvVarName = "PYAPP_DISABLE_REPORTING"

// UvExeConfigKey is the config key holding the user-configured uv executable path
const UvExeConfigKey = "uv.exe"

// DefaultPythonConfigKey is the config key holding the default python version constraint
const DefaultPythonConfigKey = "python.default"

// DefaultPythonVersion is used when neither flag, spec file nor config provide a version
const DefaultPythonVersion = "3.13"

// MinUvVersion is the oldest uv release whose CLI surface we can drive
const MinUvVersion = "0.6.0"

// DefaultTargetDirName is the bundle directory used when --target is not given
const DefaultTargetDirName = "py-standalone"

// IssuesURL is the URL users can report problems at
const IssuesURL = "https://github.com/py-app-standalone/cli/issues"
