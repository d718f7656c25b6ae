package entities

// Event types published on the game event bus. The source of every event is
// the character; the target is the monster when one is involved.
const (
	EventBattleStarted = "battle.started"
	EventBattleVictory = "battle.victory"
	EventBattleDefeat  = "battle.defeat"
	EventBattleFled    = "battle.fled"
	EventLevelUp       = "character.level_up"
	EventDailyClaimed  = "daily.claimed"
	EventRevived       = "character.revived"
)
