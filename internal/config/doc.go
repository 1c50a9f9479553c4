// Package config loads the cardex configuration file.
//
// The file lives at ~/.config/cardex/config.toml and is optional; a
// missing file yields the built-in defaults (the public TCGdex endpoint,
// English, and a fixed startup card). Recognized keys:
//
//	base_url     = "https://api.tcgdex.net"
//	language     = "en"
//	default_card = "swsh3-136"
//
// Values are whitespace-trimmed and empty values fall back to defaults.
// Only a file that exists but cannot be parsed is an error.
package config
