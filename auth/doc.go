// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and verification.

# Hashing

Passwords are hashed with bcrypt at the configured Cost:

	hash, err := auth.HashPassword("hunter22")

bcrypt embeds its own random salt in the returned string, so two hashes
of one password differ but both verify. Passwords longer than 72 bytes
are rejected with ErrPasswordTooLong rather than silently truncated.

# Verification

	ok := auth.VerifyPassword("hunter22", hash)

VerifyPassword never returns an error: a wrong password, an empty hash
and a corrupted hash are all just false. The comparison is constant
time inside bcrypt.

# Sessions

There are none. Login returns the user's identity and clients pass
user_id on later requests.
*/
package auth
