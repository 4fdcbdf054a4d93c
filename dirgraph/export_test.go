package dirgraph

// SetRepCheck toggles the per-mutation representation-invariant sweep.
// Tests enable it so every mutation in a test run is verified.
func SetRepCheck(on bool) { repCheckEnabled = on }
