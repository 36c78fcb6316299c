// Copyright 2024-2026 Aiku AI

package discordfmt

// ResolutionContext carries optional Discord id → display name tables for
// mention resolution. A nil context is valid: every lookup then falls back
// to a synthetic name. The context is read-only per conversion call, so an
// immutable instance may be shared across concurrent calls.
type ResolutionContext struct {
	Users    map[string]string `yaml:"users"`
	Roles    map[string]string `yaml:"roles"`
	Channels map[string]string `yaml:"channels"`
}

// lookupUser resolves a Discord user ID to a display name, falling back to
// the synthetic "User<id>" form.
func (rctx *ResolutionContext) lookupUser(id string) string {
	if rctx != nil {
		if name, ok := rctx.Users[id]; ok {
			return name
		}
	}
	return "User" + id
}

// lookupRole resolves a Discord role ID, falling back to "Role<id>".
func (rctx *ResolutionContext) lookupRole(id string) string {
	if rctx != nil {
		if name, ok := rctx.Roles[id]; ok {
			return name
		}
	}
	return "Role" + id
}

// lookupChannel resolves a Discord channel ID, falling back to "Channel<id>".
func (rctx *ResolutionContext) lookupChannel(id string) string {
	if rctx != nil {
		if name, ok := rctx.Channels[id]; ok {
			return name
		}
	}
	return "Channel" + id
}
