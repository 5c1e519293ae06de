/*
Package mpw implements the Master Password algorithm, which derives site-specific passwords from a user's full name, a master password, and a site name.
Nothing derived by this package ever needs to be stored, since the same inputs always produce the same outputs.

# How it works:

The full name and master password are stretched into a 64 byte MasterKey using scrypt.
This is intentionally slow, so it should be done once per session, and the resulting MasterKey reused for every site.

A 32 byte seed is derived for each site by computing HMAC-SHA256 over the purpose scope, site name, and counter, keyed by the MasterKey.
The first byte of the seed selects a template for the requested Class, and every following byte selects one character from the template's character class.

An Identicon is derived directly from the full name and master password without stretching.
Showing it before stretching lets a user notice a mistyped master password early.

# Versions:

The algorithm has changed over time in how string lengths are encoded into salts.
All derivations for a user must use the same Version to reproduce the same passwords.
  - V1 counts the full name and site name in characters.
  - V2 counts the full name in characters and the site name in bytes.
  - V3 counts both in bytes, and is the Latest version.

# General guidelines:
  - NewMasterKey wipes the master password it's given. Derive the Identicon first if you need it.
  - Call MasterKey.Wipe when the session is over.
  - Every secret.Buffer returned from this package should be wiped after use.
  - Use a new counter value to rotate a site's password without changing the master password.
*/
package mpw
