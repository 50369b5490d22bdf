package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"githubOAuth": map[string]any{
			"clientId":     "",
			"clientSecret": "",
		},
		"whatsapp": map[string]any{
			"number":  "",
			"baseUrl": "",
		},
		"content": map[string]any{
			"productsDir": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GITHUBOAUTH_CLIENTID", want: "githubOAuth.clientId"},
		{envKey: "GITHUBOAUTH_CLIENTSECRET", want: "githubOAuth.clientSecret"},
		{envKey: "WHATSAPP_NUMBER", want: "whatsapp.number"},
		{envKey: "WHATSAPP_BASEURL", want: "whatsapp.baseUrl"},
		{envKey: "CONTENT_PRODUCTSDIR", want: "content.productsDir"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Catalog.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.Catalog.PageSize, defaultPageSize)
	}
	if cfg.WhatsApp.BaseURL != defaultWhatsAppBase {
		t.Fatalf("BaseURL = %q, want %q", cfg.WhatsApp.BaseURL, defaultWhatsAppBase)
	}
	if cfg.Brand.FullName() != "Kumoart Handmade" {
		t.Fatalf("FullName = %q, want %q", cfg.Brand.FullName(), "Kumoart Handmade")
	}
	if cfg.Env.Log.Level != "info" {
		t.Fatalf("Log.Level = %q, want %q", cfg.Env.Log.Level, "info")
	}
	if cfg.Export.OutputDir != defaultExportDir {
		t.Fatalf("OutputDir = %q, want %q", cfg.Export.OutputDir, defaultExportDir)
	}
}
