package constants

import (
	"testing"
	"time"
)

func TestRefreshInterval(t *testing.T) {
	if RefreshInterval < 10*time.Millisecond || RefreshInterval >= 100*time.Millisecond {
		t.Errorf("Expected refresh interval in tens of milliseconds, got %v", RefreshInterval)
	}
}

func TestToneEnvelopeFitsDuration(t *testing.T) {
	if ToneAttack+ToneRelease > ToneDuration {
		t.Errorf("Attack %v + release %v exceed tone duration %v", ToneAttack, ToneRelease, ToneDuration)
	}
}
