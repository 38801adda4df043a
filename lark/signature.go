package lark

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// NonceStr is the fixed random string mixed into every JSAPI signature. The
// provider only requires that the same value is used client- and server-side
// for a given config call.
const NonceStr = "13oEviLbrTo458A3NjrOwS70oTOXVOAm"

// Signature computes the hex SHA1 digest over the JSAPI signature base string.
// Parameter order in the base string is fixed by the provider.
func Signature(ticket, nonce string, timestamp int64, pageURL string) string {
	base := fmt.Sprintf("jsapi_ticket=%s&noncestr=%s&timestamp=%d&url=%s", ticket, nonce, timestamp, pageURL)
	sum := sha1.Sum([]byte(base))
	return hex.EncodeToString(sum[:])
}
