// Package envcfg reads the publish contract from the environment: the
// thirteen variables a release pipeline exports to describe the plugin
// build being published. Values are resolved through Viper, so they can
// come from the process environment or from a dotenv file loaded before
// collection. Missing variables are reported one at a time, in contract
// order, with the exit code pipeline scripts already check for.
package envcfg
