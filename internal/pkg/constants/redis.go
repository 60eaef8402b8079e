package constants

// Redis key formats
const (
	// Auth Service
	KeyVerificationSession = "auth:session:%s"  // Format: auth:session:{phone}
	KeyResendCooldown      = "auth:cooldown:%s" // Format: auth:cooldown:{phone}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
