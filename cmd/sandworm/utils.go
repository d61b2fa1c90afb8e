package sandworm

// defaultRoot is the home directory reported by home (normally
// os.UserHomeDir), or "." when it cannot be resolved.
func defaultRoot(home func() (string, error)) string {
	if dir, err := home(); err == nil && dir != "" {
		return dir
	}
	return "."
}

func pickString(changed bool, cli string, local, global *string) string {
	if changed {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return cli
}

func pickInt(changed bool, cli int, local, global *int) int {
	if changed {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func pickInt64(changed bool, cli int64, local, global *int64) int64 {
	if changed {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func pickBool(changed bool, cli bool, local, global *bool) bool {
	if changed {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}
