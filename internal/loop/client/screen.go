package client

import (
	"fmt"

	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/loop/server"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On game state or inactivity transitions, do a full terminal clear
	// so panels from the previous state don't persist on screen.
	stateChanged := c.game.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.out.Clear()
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.game.GameState
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	if err := c.game.Draw(c.frame, c.state.board); err != nil {
		return err
	}

	// Later panels replace the game's own.
	switch {
	case c.state.shutdown:
		c.drawShutdownScreen()
	case c.state.isInactive:
		c.drawInactivityScreen()
	}

	c.frame.Flush()

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.out)

	return c.out.Flush()
}

// drawInactivityScreen draws the inactivity warning.
func (c *Client) drawInactivityScreen() {
	left := int(config.InactivityDisconnectUser - c.now().Sub(c.lastInput).Seconds())
	c.frame.Panel("INACTIVITY WARNING", []string{
		"You have been inactive for too long.",
		fmt.Sprintf("You will be disconnected in %d seconds.", max(left, 0)),
		"",
		"Press any key to continue",
	}, draw.Cone)
}

// drawShutdownScreen draws the server shutdown notification.
func (c *Client) drawShutdownScreen() {
	remaining := int(c.state.shutdownTimer) + 1
	c.frame.Panel("SERVER SHUTTING DOWN", []string{
		"The server is restarting for maintenance.",
		"Please reconnect in a moment.",
		"",
		fmt.Sprintf("Disconnecting in %d seconds...", remaining),
		"Press Q to disconnect now",
	}, draw.Rumble)
}

// refreshBoard formats the hub's best runs for the menu panels.
func (c *Client) refreshBoard() {
	c.state.board = server.BoardLines(c.hub.BestRuns())
}
