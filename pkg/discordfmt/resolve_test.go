// Copyright 2024-2026 Aiku AI

package discordfmt

import "testing"

func TestResolutionContextNil(t *testing.T) {
	t.Parallel()
	var rctx *ResolutionContext
	if got := rctx.lookupUser("42"); got != "User42" {
		t.Errorf("nil context lookupUser: got %q, want %q", got, "User42")
	}
	if got := rctx.lookupRole("42"); got != "Role42" {
		t.Errorf("nil context lookupRole: got %q, want %q", got, "Role42")
	}
	if got := rctx.lookupChannel("42"); got != "Channel42" {
		t.Errorf("nil context lookupChannel: got %q, want %q", got, "Channel42")
	}
}

func TestResolutionContextHit(t *testing.T) {
	t.Parallel()
	rctx := &ResolutionContext{
		Users:    map[string]string{"1": "alice"},
		Roles:    map[string]string{"2": "mods"},
		Channels: map[string]string{"3": "general"},
	}
	if got := rctx.lookupUser("1"); got != "alice" {
		t.Errorf("lookupUser: got %q, want alice", got)
	}
	if got := rctx.lookupRole("2"); got != "mods" {
		t.Errorf("lookupRole: got %q, want mods", got)
	}
	if got := rctx.lookupChannel("3"); got != "general" {
		t.Errorf("lookupChannel: got %q, want general", got)
	}
}

func TestResolutionContextMiss(t *testing.T) {
	t.Parallel()
	rctx := &ResolutionContext{Users: map[string]string{"1": "alice"}}
	if got := rctx.lookupUser("9"); got != "User9" {
		t.Errorf("miss lookupUser: got %q, want User9", got)
	}
	if got := rctx.lookupRole("9"); got != "Role9" {
		t.Errorf("miss lookupRole with nil map: got %q, want Role9", got)
	}
}
