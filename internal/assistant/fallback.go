package assistant

import "context"

// Fallback asks the remote completer and falls back to a canned reply on any
// failure. It reads no store state, so it may run off the UI loop.
func (a *Assistant) Fallback(ctx context.Context, message string) string {
	if a.completer == nil || !a.completer.Configured() {
		return a.picker.Pick(cannedFallbacks) + credentialHint
	}
	text, err := a.completer.Complete(ctx, message)
	if err != nil {
		a.logger.Printf("[assistant] remote completion failed: %v", err)
		return a.picker.Pick(cannedFallbacks)
	}
	return text
}
