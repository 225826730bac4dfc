package ports

// TokenPair carries the short-lived access token and the long-lived refresh
// token issued together for one subject.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenClaims is the verified payload of a token: the subject user id (decimal
// string form) and the credential embedded at issuance time.
type TokenClaims struct {
	UserID   string
	UserPass string
}

// TokenService issues and verifies signed claims.
type TokenService interface {
	// Issue signs an access/refresh pair for the subject. Fails only on
	// signer error.
	Issue(userID, userPass string) (*TokenPair, error)
	// Verify checks signature and expiry. Malformed, tampered, or expired
	// tokens yield domain.ErrInvalidToken, never a fault.
	Verify(token string) (*TokenClaims, error)
	// Refresh re-issues a pair from a valid refresh token.
	Refresh(refreshToken string) (*TokenPair, error)
}
