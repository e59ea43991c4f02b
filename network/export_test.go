package network

// ResetActive clears the active network so that tests can exercise Select.
func ResetActive() {
	activeMtx.Lock()
	activeParams = nil
	activeMtx.Unlock()
}

// Unregister removes names registered by a test.
func Unregister(names ...string) {
	registryMtx.Lock()
	defer registryMtx.Unlock()

	for _, name := range names {
		delete(registeredNets, name)
	}
}
