package api

import (
	"encoding/json"
	"testing"
)

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"Move", `{"action":"MOVE","payload":{"dx":1,"dy":0}}`, false},
		{"No payload", `{"action":"WAIT"}`, false},
		{"Null payload", `{"action":"PICKUP","payload":null}`, false},
		{"Missing action", `{"payload":{}}`, true},
		{"Empty action", `{"action":""}`, true},
		{"Bad characters", `{"action":"MOVE;DROP"}`, true},
		{"Unknown field", `{"action":"WAIT","token":"x"}`, true},
		{"Payload not object", `{"action":"MOVE","payload":[1,0]}`, true},
		{"Not json", `MOVE`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommand([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCommand(%s) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{"action":"USE","payload":{"itemId":"x","target":{"x":3,"y":4}}}`))
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Action != "USE" {
		t.Errorf("Got action %q", cmd.Action)
	}

	var p UsePayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.Target == nil || p.Target.X != 3 || p.Target.Y != 4 {
		t.Errorf("Got target %+v", p.Target)
	}
}

func TestPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       Validator
		wantErr bool
	}{
		{"Step", DirectionPayload{Dx: 1, Dy: -1}, false},
		{"Zero vector", DirectionPayload{}, true},
		{"Too far", DirectionPayload{Dx: 2}, true},
		{"Item", ItemPayload{ItemID: "a"}, false},
		{"Item empty", ItemPayload{}, true},
		{"Use empty", UsePayload{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.v.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
