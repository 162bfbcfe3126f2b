package platform

// BringToFront activates the application so a prompt is not hidden behind
// other windows. Does nothing if it already has focus.
func BringToFront() {
	bringToFront(IsAppActive, activateApp)
}

func bringToFront(isActive func() bool, activate func()) {
	if !isActive() {
		activate()
	}
}
