package github

import "testing"

func TestValidateRepoRef(t *testing.T) {
	tests := []struct {
		owner, repo string
		wantErr     bool
	}{
		{"serde-rs", "serde", false},
		{"jonaspleyer", "cellular_raza", false},
		{"rust-lang", "rust.vim", false},

		{"", "serde", true},
		{"-serde", "serde", true},
		{"serde-rs", "", true},
		{"serde-rs", "..", true},
		{"serde rs", "serde", true},
		{"serde-rs", "ser de", true},
	}

	for _, tt := range tests {
		t.Run(tt.owner+"/"+tt.repo, func(t *testing.T) {
			err := ValidateRepoRef(tt.owner, tt.repo)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepoRef(%q, %q) error = %v, wantErr %v", tt.owner, tt.repo, err, tt.wantErr)
			}
		})
	}
}
