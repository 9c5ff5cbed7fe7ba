package domain

// Credential carries the upstream VMS address and the Authorization header
// value for one request. It is built per request from incoming headers and
// passed explicitly to whichever component needs it; nothing stores it.
type Credential struct {
	ServerURL     string
	Authorization string
}

func (c Credential) IsZero() bool {
	return c.ServerURL == "" || c.Authorization == ""
}
