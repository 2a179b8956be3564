package service

// Broadcaster pushes events to connected dashboard clients (implemented by ws.Hub)
type Broadcaster interface {
	BroadcastToClient(clientID string, msgType string, payload interface{})
	BroadcastToAll(msgType string, payload interface{})
}
