package model

// Credential is a single URL/username/password triple parsed from an input line.
// It is immutable once created; equality is structural over all three fields,
// which is the identity used for deduplication.
type Credential struct {
	// URL is the full URL including scheme, e.g. "https://example.com/login".
	URL string `json:"url"`

	// Username is the account name that follows the URL on the input line.
	Username string `json:"username"`

	// Password is the final colon-separated field on the input line.
	Password string `json:"password"`
}

// Key returns the deduplication key for the credential.
// Two credentials with the same key are considered identical.
//
// The URL cannot contain whitespace (the scanner pattern forbids it), and the
// username cannot contain colons, so joining the fields with "\x00" is
// collision-free for any input the scanner can produce.
func (c Credential) Key() string {
	return c.URL + "\x00" + c.Username + "\x00" + c.Password
}

// String returns the credential in its original on-disk form.
// This is also the plain-text export format.
func (c Credential) String() string {
	return c.URL + ":" + c.Username + ":" + c.Password
}

// Match is a credential found during scanning, together with where it was found.
// The provenance fields are used for progress output, the error log, and run
// history; export formats emit only the embedded Credential.
type Match struct {
	Credential

	// Source is the path of the file the credential was found in.
	Source string `json:"source"`

	// Line is the 1-based line number within the source file.
	Line int `json:"line"`
}
