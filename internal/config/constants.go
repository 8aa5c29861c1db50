package config

import "time"

// Base application details
const AppName = "inkblock"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "inkblock.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultBlockID = "1"
const SystemClipboard = false
