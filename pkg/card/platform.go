package card

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-drift/cardview/pkg/errors"
)

// API levels at which the host gains a capability.
const (
	// APILevelNative is the first level with native elevation shadows.
	APILevelNative = 21
	// APILevelJellybeanMR1 is the first level with a reliable rounded-rect
	// primitive.
	APILevelJellybeanMR1 = 17
)

// Release versions matching the API levels above.
const (
	versionNative       = "v5.0"
	versionJellybeanMR1 = "v4.2"
)

// Platform describes the host's capabilities. Version, when set, takes
// precedence over APILevel.
type Platform struct {
	// APILevel is the host's integer API level. Zero means unknown.
	APILevel int
	// Version is a dotted release version such as "4.4" or "5.1.1".
	Version string
}

// DefaultPlatform describes a host with native elevation support.
func DefaultPlatform() Platform {
	return Platform{APILevel: APILevelNative}
}

func (p Platform) String() string {
	switch {
	case p.Version != "" && p.APILevel > 0:
		return fmt.Sprintf("version %s (api %d)", p.Version, p.APILevel)
	case p.Version != "":
		return "version " + p.Version
	case p.APILevel > 0:
		return fmt.Sprintf("api %d", p.APILevel)
	default:
		return "unknown"
	}
}

// Tier identifies one of the three rendering strategies.
type Tier int

const (
	// TierNative uses the host's elevation shadow.
	TierNative Tier = iota
	// TierJellybeanMR1 paints gradient shadows and fills with the host's
	// rounded-rect primitive.
	TierJellybeanMR1
	// TierLegacy paints gradient shadows and fills with a path.
	TierLegacy
)

func (t Tier) String() string {
	switch t {
	case TierNative:
		return "native"
	case TierJellybeanMR1:
		return "jellybean_mr1"
	case TierLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ManualShadows reports whether the tier paints shadows with gradients.
func (t Tier) ManualShadows() bool {
	return t == TierJellybeanMR1 || t == TierLegacy
}

// TierFor picks the tier for a platform. A version that cannot be parsed
// is reported through errors.Report and the API level is used instead;
// with neither, the host is assumed to support native shadows.
func TierFor(p Platform) Tier {
	if p.Version != "" {
		if v, ok := canonicalVersion(p.Version); ok {
			switch {
			case semver.Compare(v, versionNative) >= 0:
				return TierNative
			case semver.Compare(v, versionJellybeanMR1) >= 0:
				return TierJellybeanMR1
			default:
				return TierLegacy
			}
		}
		errors.Report(&errors.CardError{
			Op:   "card.TierFor",
			Kind: errors.KindPlatform,
			Err:  fmt.Errorf("invalid platform version %q", p.Version),
		})
	}
	switch {
	case p.APILevel <= 0, p.APILevel >= APILevelNative:
		return TierNative
	case p.APILevel >= APILevelJellybeanMR1:
		return TierJellybeanMR1
	default:
		return TierLegacy
	}
}

// canonicalVersion turns "4.4" or "v4.4.2" into a semantic version.
func canonicalVersion(version string) (string, bool) {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", false
	}
	return semver.Canonical(v), true
}
