package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadSubjectCacheTTL(t *testing.T) {
	t.Setenv("SUBJECT_CACHE_TTL_MINUTES", "")
	if got := Load().SubjectCacheTTL; got != 24*time.Hour {
		t.Errorf("default SubjectCacheTTL = %v, want 24h", got)
	}

	t.Setenv("SUBJECT_CACHE_TTL_MINUTES", "30")
	if got := Load().SubjectCacheTTL; got != 30*time.Minute {
		t.Errorf("SubjectCacheTTL = %v, want 30m", got)
	}
}

func TestValidateReportsMissingKeys(t *testing.T) {
	err := (&Config{}).Validate()
	if err == nil {
		t.Fatal("expected error for empty config")
	}
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "COURSE_API_BASE_URL", "FALLBACK_TERMS"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q missing %s", err, key)
		}
	}
}
