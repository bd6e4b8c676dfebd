package builtin

import "io"

// HandleHelp writes helpText to stdout and reports handled=true when args
// contains -h or --help; remaining is args with no flags stripped, since
// every command here only ever checks for help before its own parsing.
func HandleHelp(args []string, stdout io.Writer, helpText string) (handled bool, remaining []string) {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			io.WriteString(stdout, helpText)
			return true, args
		}
	}
	return false, args
}
