package config

import "time"

const AppName = "richedit"
const DefaultConfigFileName = "config.toml"

const DefaultMaxHistory = 1000
const DefaultSourceTheme = "dracula"
const DefaultPlaceholder = "Start writing..."
const DefaultLogLevel = "info"

// Status line messages
const DefaultMessageTimeout = 3 * time.Second
