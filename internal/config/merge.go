package config

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global Config, local *LocalConfig) Config {
	if local == nil {
		return global
	}

	// Path has no local counterpart and is inherited as-is
	merged := global

	if local.Remote != nil {
		merged.Remote = *local.Remote
	}
	if local.Switch != nil {
		merged.Switch = *local.Switch
	}

	return merged
}
