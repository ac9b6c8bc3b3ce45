package discord

// RegisterInteractionHandlers wires the component and modal handlers the
// commands depend on. Slash commands themselves are registered by the
// binary so the full command list lives in one place.
func RegisterInteractionHandlers(b *Bot) {
	b.Registry.RegisterComponent(componentCartAdd, HandleCartAddComponent)
	b.Registry.RegisterComponent(componentFulfillPrefix, HandleFulfillComponent)
	b.Registry.RegisterComponent(componentDenyPrefix, HandleDenyComponent)

	b.Registry.RegisterModal(modalRequest, HandleRequestModal)
	b.Registry.RegisterModal(modalDenyPrefix, HandleDenyModal)
}
