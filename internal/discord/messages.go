package discord

// Friendly message constants for Discord responses
const (
	// Items & Search
	MsgItemNotFound = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgNoResults    = "🔍 **No Matches**\nNothing in the bank matched that search."

	// Cart
	MsgCartEmpty = "🛒 **Cart Empty**\nSearch for items and add them first."
	MsgNoItems   = "📦 **No Items Found**\nNone of those lines looked like item requests. One item per line, please."

	// Requests
	MsgRequestNotFound = "📋 **Request Not Found**\nIt may already be fulfilled or denied."

	MsgGenericError = "❌ Something went wrong."
)
