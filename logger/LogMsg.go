package logger

const ConfigLoadedMsg = "config loaded from %s"
const ConfigDefaultMsg = "no config file found, using defaults"
const ConfigErrorMsg = "config error: %v"

const MatchStartedMsg = "match %s started, frontend: %s"
const MatchStoppedMsg = "match stopped after %d ticks, score %d:%d"

const ScoreMsg = "%s side scores, score %d:%d"
const SnapshotMsg = "snapshot %s"

const AssetLoadedMsg = "asset loaded: %s"
const AssetMissingMsg = "asset missing: %v"

const FrontendErrorMsg = "frontend error: %v"
const QuitRequestedMsg = "quit requested"
