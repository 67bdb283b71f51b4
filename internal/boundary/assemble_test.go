package boundary

import "testing"

// TestFullName tests export name composition from name and name:prefix
func TestFullName(t *testing.T) {
	tests := []struct {
		name string
		tags Tags
		want string
	}{
		{"name only", Tags{"name": "Foo"}, "Foo"},
		{"prefixed", Tags{"name": "Foo", "name:prefix": "Bar"}, "Bar_Foo"},
		{"missing name", Tags{"admin_level": "4"}, UnknownName},
		{"prefix without name", Tags{"name:prefix": "Bar"}, "Bar_" + UnknownName},
		{"empty prefix ignored", Tags{"name": "Foo", "name:prefix": ""}, "Foo"},
		{"empty name kept", Tags{"name": ""}, ""},
		{"nil tags", nil, UnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FullName(tt.tags); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssemblyAdminLevel(t *testing.T) {
	tests := []struct {
		value string
		want  int64
	}{
		{"4", 4},
		{"10", 10},
		{"", 0},
		{"x", 0},
		{"-1", -1},
	}

	for _, tt := range tests {
		if got := AssemblyAdminLevel(Tags{"admin_level": tt.value}); got != tt.want {
			t.Errorf("AssemblyAdminLevel(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
	if got := AssemblyAdminLevel(Tags{}); got != 0 {
		t.Errorf("missing admin_level should default to 0, got %d", got)
	}
}

// TestAssemble tests that chains become rings in order with points unchanged
func TestAssemble(t *testing.T) {
	rel := &BoundaryRelation{
		ID:   42,
		Tags: Tags{"name": "Foo", "name:prefix": "Bar", "admin_level": "6"},
	}
	chains := []NodeChain{chainOf(1, 2, 3, 1), chainOf(7, 8)}

	poly := Assemble(rel, chains)

	if poly.Name != "Bar_Foo" {
		t.Errorf("expected name Bar_Foo, got %q", poly.Name)
	}
	if poly.AdminLevel != 6 {
		t.Errorf("expected admin level 6, got %d", poly.AdminLevel)
	}
	if poly.RelationID != 42 {
		t.Errorf("expected relation id 42, got %d", poly.RelationID)
	}
	if len(poly.Rings) != 2 {
		t.Fatalf("expected 2 rings, got %d", len(poly.Rings))
	}
	for i, chain := range chains {
		ring := poly.Rings[i]
		if len(ring) != len(chain) {
			t.Fatalf("ring %d: expected %d points, got %d", i, len(chain), len(ring))
		}
		for j := range chain {
			if ring[j].Lat != chain[j].Lat || ring[j].Lon != chain[j].Lon {
				t.Errorf("ring %d point %d: got %+v, want lat=%v lon=%v",
					i, j, ring[j], chain[j].Lat, chain[j].Lon)
			}
		}
	}
}

func TestAssembleNoChains(t *testing.T) {
	poly := Assemble(&BoundaryRelation{ID: 1, Tags: Tags{"admin_level": "2"}}, nil)
	if len(poly.Rings) != 0 {
		t.Errorf("expected no rings, got %d", len(poly.Rings))
	}
	if poly.Name != UnknownName {
		t.Errorf("expected %q, got %q", UnknownName, poly.Name)
	}
}
