package assets

import (
	"net"
	"net/http"
	"path"
	"strconv"
	"strings"
)

const UploadsDir = "uploads"

type ReferenceKind int

const (
	KindAbsolute ReferenceKind = iota
	KindCanonical
	KindLegacyUploads
	KindBareFilename
)

func (k ReferenceKind) String() string {
	switch k {
	case KindAbsolute:
		return "absolute"
	case KindCanonical:
		return "canonical"
	case KindLegacyUploads:
		return "legacy_uploads"
	case KindBareFilename:
		return "bare_filename"
	default:
		return "unknown"
	}
}

// Reference is a parsed image reference. Value holds the URL for
// KindAbsolute, the canonical path for KindCanonical and the filename
// for the other kinds.
type Reference struct {
	Kind  ReferenceKind
	Value string
}

// ScopeDir returns "uploads/{restaurantID}/{categoryID}".
func ScopeDir(restaurantID, categoryID int) string {
	return UploadsDir + "/" + strconv.Itoa(restaurantID) + "/" + strconv.Itoa(categoryID)
}

// ParseReference classifies a stored image reference for the given scope.
// ok is false when the reference is empty.
func ParseReference(ref string, restaurantID, categoryID int) (Reference, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Reference{}, false
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return Reference{Kind: KindAbsolute, Value: ref}, true
	}

	prefix := ScopeDir(restaurantID, categoryID) + "/"
	if i := strings.Index(ref, prefix); i >= 0 {
		return Reference{Kind: KindCanonical, Value: ref[i:]}, true
	}

	if strings.Contains(ref, "/"+UploadsDir+"/") || strings.HasPrefix(ref, UploadsDir+"/") {
		return Reference{Kind: KindLegacyUploads, Value: path.Base(ref)}, true
	}

	return Reference{Kind: KindBareFilename, Value: strings.TrimPrefix(ref, "/")}, true
}

// Canonical maps the reference to its storage path. Absolute URLs are
// returned unchanged.
func (r Reference) Canonical(restaurantID, categoryID int) string {
	switch r.Kind {
	case KindAbsolute, KindCanonical:
		return r.Value
	default:
		return ScopeDir(restaurantID, categoryID) + "/" + r.Value
	}
}

// CanonicalPath returns "" for an empty reference.
func CanonicalPath(ref string, restaurantID, categoryID int) string {
	parsed, ok := ParseReference(ref, restaurantID, categoryID)
	if !ok {
		return ""
	}
	return parsed.Canonical(restaurantID, categoryID)
}

// Origin is the client-facing protocol, host and port used for image URLs.
type Origin struct {
	Protocol string
	Host     string
	Port     string
}

// OriginFromRequest honours X-Forwarded-Proto and X-Forwarded-Host so URLs
// stay valid behind the gateway. Any port on the host is dropped in favour
// of the advertised port.
func OriginFromRequest(r *http.Request, port string) Origin {
	protocol := "http"
	if r.TLS != nil {
		protocol = "https"
	}
	if p := firstHeaderValue(r.Header.Get("X-Forwarded-Proto")); p != "" {
		protocol = strings.ToLower(p)
	}

	host := r.Host
	if h := firstHeaderValue(r.Header.Get("X-Forwarded-Host")); h != "" {
		host = h
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	// A bare IPv6 host arrives bracketed; URL adds the brackets back.
	host = strings.Trim(host, "[]")

	return Origin{Protocol: protocol, Host: host, Port: port}
}

func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// URL formats a relative path as {protocol}://{host}:{port}/{path}.
func (o Origin) URL(relativePath string) string {
	relativePath = strings.TrimPrefix(relativePath, "/")
	host := o.Host
	switch {
	case o.Port != "":
		host = net.JoinHostPort(o.Host, o.Port)
	case strings.Contains(host, ":"):
		host = "[" + host + "]"
	}
	return o.Protocol + "://" + host + "/" + relativePath
}

// Resolve turns a stored reference into the URL a client should fetch.
// nil or empty references resolve to nil.
func (o Origin) Resolve(ref *string, restaurantID, categoryID int) *string {
	if ref == nil {
		return nil
	}
	parsed, ok := ParseReference(*ref, restaurantID, categoryID)
	if !ok {
		return nil
	}
	if parsed.Kind == KindAbsolute {
		url := parsed.Value
		return &url
	}
	url := o.URL(parsed.Canonical(restaurantID, categoryID))
	return &url
}
