package main

func cmdSave(m *model, args []string) (string, bool) {
	path := ""
	if len(args) >= 1 {
		path = args[0]
	}
	written, err := saveSession(m, path)
	if err != nil {
		return err.Error(), true
	}
	return "Saved session to " + written, false
}
