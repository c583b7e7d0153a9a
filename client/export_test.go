package client

import "time"

var NewClientsManagerForTest = newClientsManager

func (cm *ClientsManager) ProcessClientAction(line string) error {
	return cm.processClientAction(line)
}

func (cm *ClientsManager) RemoveUnusedClients(now time.Time) {
	cm.removeUnusedClients(now)
}

func (cm *ClientsManager) ClientCount() int {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	return len(cm.clients)
}

