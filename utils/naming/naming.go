// Package naming derives user display names and handles from sub-accounts
// and normalises account identifiers.
package naming

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
	"golang.org/x/crypto/sha3"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	evmAddress      = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// RandomDigits returns a string of n random decimal digits, 1 <= n <= 16.
func RandomDigits(n int) string {
	if n < 1 || n > 16 {
		panic(fmt.Sprintf("naming: digit count %d out of range", n))
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	s := fmt.Sprintf("%020d", binary.BigEndian.Uint64(b[:]))
	return s[len(s)-n:]
}

// NameFromEmail keeps the first dot-separated part of the local part and appends 4 random digits.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if first, _, found := strings.Cut(local, "."); found && first != "" {
		local = first
	}
	return local + "_" + RandomDigits(4)
}

// NameFromWallet shortens a wallet address to the "xxx...yyyyy" pattern.
func NameFromWallet(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[2:5] + "..." + address[len(address)-5:]
}

// DefaultUserName derives a display name from the first email account, then
// the first wallet account, falling back to a random name.
func DefaultUserName(accounts []model.AccountNew) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no user accounts provided")
	}
	for _, acc := range accounts {
		if acc.Type == constant.AccountTypeEmail && acc.Identifier != "" {
			return NameFromEmail(acc.Identifier), nil
		}
	}
	for _, acc := range accounts {
		if acc.Type == constant.AccountTypeWallet && acc.Identifier != "" {
			return NameFromWallet(acc.Identifier), nil
		}
	}
	return constant.UserNameUnknownPrefix + RandomDigits(9), nil
}

// Slug lowercases name and drops everything but ASCII letters and digits.
func Slug(name string) string {
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(name, ""))
}

// Handle builds "<slug>#<6 digits>" from name when it is long enough,
// otherwise from the default name of the accounts.
func Handle(name string, accounts []model.AccountNew) string {
	slug := ""
	if utf8.RuneCountInString(name) >= constant.UserNameMinLength {
		slug = Slug(name)
	}
	if slug == "" {
		if defaultName, err := DefaultUserName(accounts); err == nil {
			slug = Slug(defaultName)
		}
	}
	if slug == "" {
		slug = "u" + RandomDigits(9)
	}
	return slug + "#" + RandomDigits(constant.UserHandleDigits)
}

// NormalizeWalletAddress returns EVM addresses in their EIP-55 checksum form.
// Mixed-case input must already carry a valid checksum. Non EVM identifiers are returned untouched.
func NormalizeWalletAddress(address string) (string, error) {
	if !evmAddress.MatchString(address) {
		return address, nil
	}
	checksummed := checksumAddress(address)
	hexPart := address[2:]
	mixedCase := strings.ToLower(hexPart) != hexPart && strings.ToUpper(hexPart) != hexPart
	if mixedCase && address != checksummed {
		return "", fmt.Errorf("invalid wallet address checksum '%s'", address)
	}
	return checksummed, nil
}

func checksumAddress(address string) string {
	lower := strings.ToLower(address[2:])
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := hex.EncodeToString(h.Sum(nil))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && digest[i] >= '8' {
			out[i] = c - 32
		}
	}
	return "0x" + string(out)
}

// NormalizeIdentifier returns the canonical stored form of an account identifier.
func NormalizeIdentifier(accountType constant.AccountType, identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	switch accountType {
	case constant.AccountTypeWallet:
		return NormalizeWalletAddress(identifier)
	case constant.AccountTypeEmail:
		return strings.ToLower(identifier), nil
	}
	return identifier, nil
}

// Obfuscate masks an account identifier for display to other users.
func Obfuscate(accountType constant.AccountType, identifier string) string {
	if identifier == "" {
		return ""
	}
	switch accountType {
	case constant.AccountTypeWallet:
		if len(identifier) <= 12 {
			return identifier
		}
		return identifier[:7] + "***" + identifier[len(identifier)-5:]
	case constant.AccountTypeEmail:
		name, domain, _ := strings.Cut(identifier, "@")
		return edges(name) + "@" + domain
	default:
		return edges(identifier)
	}
}

func edges(s string) string {
	if len(s) <= 4 {
		return s[:min(len(s), 1)] + "***"
	}
	return s[:2] + "***" + s[len(s)-2:]
}
