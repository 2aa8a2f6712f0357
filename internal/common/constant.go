package common

// SessionCookieName is the cookie that carries the session bearer token.
const SessionCookieName = "session_id"

// SessionTokenLength is the number of characters in a session token.
const SessionTokenLength = 32
