// controllers/webhook.go
package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"marusalon-backend/services"
	"marusalon-backend/utils"
)

// InboundMessage is the WhatsApp-style payload the gateway delivers.
type InboundMessage struct {
	SenderID    string `json:"senderId" binding:"required"`
	Text        string `json:"text" binding:"required"`
	Timestamp   int64  `json:"timestamp"`
	ContactName string `json:"contactName"`
}

type WebhookController struct {
	dispatcher *services.Dispatcher
	sender     services.MessageSender
}

func NewWebhookController(dispatcher *services.Dispatcher, sender services.MessageSender) *WebhookController {
	return &WebhookController{dispatcher: dispatcher, sender: sender}
}

// VerifyWebhook answers the hub.challenge handshake
func (ctrl *WebhookController) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == os.Getenv("WHATSAPP_WEBHOOK_VERIFY_TOKEN") {
		log.Println("✅ WhatsApp webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}
	log.Println("❌ WhatsApp webhook verification failed")
	c.String(http.StatusForbidden, "Forbidden")
}

// ReceiveMessage runs an inbound message through the dispatcher and
// sends the reply back out through the gateway.
func (ctrl *WebhookController) ReceiveMessage(c *gin.Context) {
	var input InboundMessage
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid webhook payload: "+err.Error())
		return
	}

	result := ctrl.dispatcher.HandleMessage(input.SenderID, input.Text, input.ContactName)

	// Out-of-band delivery; a send failure is logged, the webhook still
	// acknowledges.
	if err := ctrl.sender.SendText(input.SenderID, result.ResponseText); err != nil {
		log.Printf("Failed to deliver reply to %s: %v", input.SenderID, err)
	}

	utils.RespondWithData(c, http.StatusOK, result)
}
