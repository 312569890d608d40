package processor

import (
	"strings"

	"dub-server/internal/store"
)

// disposableDomains are throwaway mailbox providers commonly used to fake conversions
var disposableDomains = map[string]bool{
	"10minutemail.com":  true,
	"20minutemail.com":  true,
	"guerrillamail.com": true,
	"guerrillamail.net": true,
	"sharklasers.com":   true,
	"mailinator.com":    true,
	"maildrop.cc":       true,
	"yopmail.com":       true,
	"temp-mail.org":     true,
	"tempmail.com":      true,
	"tempmail.dev":      true,
	"throwawaymail.com": true,
	"trashmail.com":     true,
	"getnada.com":       true,
	"dispostable.com":   true,
	"fakeinbox.com":     true,
	"mintemail.com":     true,
	"mohmal.com":        true,
	"emailondeck.com":   true,
	"moakt.com":         true,
}

// Check is one rule hit
type Check struct {
	Type    string
	Details store.JSONB
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return normalizeEmail(email[at+1:])
}

// checkEmailMatch flags customers that share the partner's own email address
func checkEmailMatch(customerEmail, partnerEmail string) *Check {
	if customerEmail == "" || partnerEmail == "" {
		return nil
	}
	if normalizeEmail(customerEmail) != normalizeEmail(partnerEmail) {
		return nil
	}
	return &Check{
		Type:    store.FraudTypeCustomerEmailMatch,
		Details: store.JSONB{"customer_email": normalizeEmail(customerEmail)},
	}
}

// checkSuspiciousDomain flags customers signing up with a disposable mailbox
func checkSuspiciousDomain(customerEmail string) *Check {
	domain := emailDomain(customerEmail)
	if domain == "" || !disposableDomains[domain] {
		return nil
	}
	return &Check{
		Type:    store.FraudTypeCustomerEmailSuspicious,
		Details: store.JSONB{"domain": domain},
	}
}

// checkCrossProgramBan flags partners already banned by another program
func checkCrossProgramBan(bannedElsewhere int) *Check {
	if bannedElsewhere == 0 {
		return nil
	}
	return &Check{
		Type:    store.FraudTypeCrossProgramBan,
		Details: store.JSONB{"banned_programs": bannedElsewhere},
	}
}
