package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"dllist/config"
	"dllist/types"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
)

const clientIdleTimeout = 10 * time.Second

type Client struct {
	queue    sqsiface.SQSAPI
	queueUrl string
	logger   log15.Logger
}

func NewClient(conf *config.Config) (*Client, error) {
	queue, err := conf.Aws.NewQueue()
	if err != nil {
		return nil, err
	}

	return New(queue, conf.Aws.QueueUrl), nil
}

func New(queue sqsiface.SQSAPI, queueUrl string) *Client {
	return &Client{
		queue:    queue,
		queueUrl: queueUrl,
		logger:   log15.New("service", "client"),
	}
}

// SendMessage publishes item to the FIFO queue. All commands share one
// message group so the server sees them in send order.
func (c *Client) SendMessage(item *types.Item) error {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	req, err := json.Marshal(item)
	if err != nil {
		return err
	}

	_, err = c.queue.SendMessage(&sqs.SendMessageInput{
		DelaySeconds:           aws.Int64(0),
		MessageBody:            aws.String(string(req)),
		QueueUrl:               &c.queueUrl,
		MessageGroupId:         aws.String("lists"),
		MessageDeduplicationId: aws.String(id.String()),
	})
	if err != nil {
		c.logger.Error("Cannot send message", "action", item.Action, "error", err)
		return fmt.Errorf("cannot send %s: %w", item.Action, err)
	}
	return nil
}

func (c *Client) PushHead(list, value string) error {
	return c.SendMessage(&types.Item{Action: types.PushHead, List: list, Value: value})
}

func (c *Client) PushTail(list, value string) error {
	return c.SendMessage(&types.Item{Action: types.PushTail, List: list, Value: value})
}

func (c *Client) PopHead(list string) error {
	return c.SendMessage(&types.Item{Action: types.PopHead, List: list})
}

func (c *Client) PopTail(list string) error {
	return c.SendMessage(&types.Item{Action: types.PopTail, List: list})
}

func (c *Client) InsertAfter(list string, position int, value string) error {
	return c.SendMessage(&types.Item{Action: types.InsertAfter, List: list, Position: position, Value: value})
}

func (c *Client) RemoveAfter(list string, position int) error {
	return c.SendMessage(&types.Item{Action: types.RemoveAfter, List: list, Position: position})
}

func (c *Client) GetList(list string) error {
	return c.SendMessage(&types.Item{Action: types.GetList, List: list})
}

func (c *Client) GetAllLists() error {
	return c.SendMessage(&types.Item{Action: types.GetAllLists})
}

func (c *Client) RemoveList(list string) error {
	return c.SendMessage(&types.Item{Action: types.RemoveList, List: list})
}

type ClientsManager struct {
	clients   map[string]*ClientUsage
	input     io.Reader
	newClient func() (*Client, error)
	logger    log15.Logger
	mux       sync.Mutex
	ctx       context.Context
	Cancel    context.CancelFunc
}

type ClientUsage struct {
	client   *Client
	lastUsed time.Time
}

func NewClientsManager(cfg *config.Config) (manager *ClientsManager, err error) {
	var input io.Reader = os.Stdin
	if len(cfg.ClientsInputPath) != 0 {
		input, err = os.Open(cfg.ClientsInputPath)
		if err != nil {
			return nil, err
		}
	}

	return newClientsManager(input, func() (*Client, error) {
		return NewClient(cfg)
	}), nil
}

func newClientsManager(input io.Reader, newClient func() (*Client, error)) *ClientsManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &ClientsManager{
		clients:   make(map[string]*ClientUsage),
		input:     input,
		newClient: newClient,
		logger:    log15.New("service", "clients"),
		ctx:       ctx,
		Cancel:    cancel,
	}
}

func (cm *ClientsManager) ListenClientActions() error {
	if cm.input == os.Stdin {
		fmt.Println("Write clients tasks here in format <clientId> <item>")
	}

	ticker := time.NewTicker(clientIdleTimeout)
	defer ticker.Stop()

	lines, errChan := SubscribeToFileInput(cm.ctx, cm.input)

	for {
		select {
		case <-cm.ctx.Done():
			return nil
		case <-ticker.C:
			cm.removeUnusedClients(time.Now())
		case line, ok := <-lines:
			if !ok {
				return <-errChan
			}
			if len(line) == 0 {
				continue
			}
			if err := cm.processClientAction(line); err != nil {
				cm.logger.Warn("Skipping client action", "line", line, "error", err)
			}
		}
	}
}

func (cm *ClientsManager) removeUnusedClients(now time.Time) {
	cm.mux.Lock()
	defer cm.mux.Unlock()
	for clientId, clientUsage := range cm.clients {
		if now.Sub(clientUsage.lastUsed) > clientIdleTimeout {
			cm.logger.Debug("Dropping idle client", "client", clientId)
			delete(cm.clients, clientId)
		}
	}
}

// processClientAction sends one "<clientId> <item>" line through the
// client registered for that id, creating it on first use.
func (cm *ClientsManager) processClientAction(inputStr string) error {
	cm.mux.Lock()
	defer cm.mux.Unlock()

	clientId, itemStr, found := strings.Cut(strings.TrimSpace(inputStr), " ")
	if !found || clientId == "" {
		return fmt.Errorf("wrong input string %q, should be in format <clientId> <item>", inputStr)
	}

	var item *types.Item
	if err := json.Unmarshal([]byte(itemStr), &item); err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("empty item for client %s", clientId)
	}

	usage, ok := cm.clients[clientId]
	if !ok {
		client, err := cm.newClient()
		if err != nil {
			return err
		}
		usage = &ClientUsage{client: client}
		cm.clients[clientId] = usage
	}
	usage.lastUsed = time.Now()

	return usage.client.SendMessage(item)
}
