package server

import (
	"context"
	"encoding/json"
	"errors"
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
	"github.com/inconshreveable/log15"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNoSuchList    = errors.New("no such list")
	ErrBadPosition   = errors.New("position out of range")
)

// Server consumes list commands from an SQS queue and applies them to named
// lists.
type Server struct {
	lists    *types.OrderedMap[string, *types.List[string]]
	queue    sqsiface.SQSAPI
	queueUrl string
	waitTime int64
	logFile  io.Writer
	ctx      context.Context
	Cancel   context.CancelFunc
	logger   log15.Logger
	dataMux  sync.Mutex
	logsMux  sync.Mutex
}

func NewServer(conf *config.Config) (*Server, error) {
	queue, err := conf.Aws.NewQueue()
	if err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(conf.LogFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return nil, err
	}

	return New(queue, conf, logFile)
}

// New builds a server around an existing queue client.
func New(queue sqsiface.SQSAPI, conf *config.Config, logFile io.Writer) (*Server, error) {
	lvl, err := log15.LvlFromString(conf.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("cannot use log level %q: %w", conf.LogLevel, err)
	}

	logger := log15.New("service", "server")
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StdoutHandler))

	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		lists:    types.NewOrderedMap[string, *types.List[string]](),
		queue:    queue,
		queueUrl: conf.Aws.QueueUrl,
		waitTime: conf.ServerWaitTimeSeconds,
		logFile:  logFile,
		ctx:      ctx,
		Cancel:   cancel,
		logger:   logger,
	}, nil
}

func (s *Server) StartServer() error {
	s.logger.Debug("Listening queue!", "url", s.queueUrl)
	messagesChan := make(chan *sqs.Message)
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.listenMessages(messagesChan)
	}()
	return s.processMessages(messagesChan, errChan)
}

func (s *Server) listenMessages(messagesChan chan<- *sqs.Message) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		default:
		}

		msgResult, err := s.queue.ReceiveMessageWithContext(s.ctx, &sqs.ReceiveMessageInput{
			AttributeNames: []*string{
				aws.String(sqs.MessageSystemAttributeNameSentTimestamp),
			},
			MessageAttributeNames: []*string{
				aws.String(sqs.QueueAttributeNameAll),
			},
			QueueUrl:            &s.queueUrl,
			MaxNumberOfMessages: aws.Int64(10),
			WaitTimeSeconds:     aws.Int64(s.waitTime),
		})
		if err != nil {
			if s.ctx.Err() != nil {
				return nil
			}
			s.logger.Error("Error while receiving messages", "error", err)
			return err
		}
		for _, message := range msgResult.Messages {
			select {
			case messagesChan <- message:
			case <-s.ctx.Done():
				return nil
			}
		}
	}
}

func (s *Server) processMessages(messagesChan <-chan *sqs.Message, errChan <-chan error) error {
	for {
		select {
		case <-s.ctx.Done():
			return nil
		case err := <-errChan:
			return err
		case message := <-messagesChan:
			if message == nil || message.Body == nil {
				continue
			}
			s.handleMessage(*message.Body)
			_, err := s.queue.DeleteMessageWithContext(s.ctx, &sqs.DeleteMessageInput{
				QueueUrl:      &s.queueUrl,
				ReceiptHandle: message.ReceiptHandle,
			})
			if err != nil {
				s.logger.Error("Error while deleting message", "error", err)
				return err
			}
		}
	}
}

// handleMessage runs one command. Commands are applied in the order the
// queue delivers them since list operations do not commute.
func (s *Server) handleMessage(body string) {
	var item *types.Item
	if err := json.Unmarshal([]byte(body), &item); err != nil {
		s.logger.Error("Cannot unmarshal message", "error", err)
		return
	}
	if item == nil {
		return
	}

	log, err := s.processItem(item)
	if err != nil {
		s.logger.Warn("Command failed", "action", item.Action, "list", item.List, "error", err)
		log = fmt.Sprintf("%s failed: %v", item.Action, err)
	} else {
		s.logger.Debug("Command done", "action", item.Action, "list", item.List)
	}

	s.logsMux.Lock()
	defer s.logsMux.Unlock()
	fmt.Fprintf(s.logFile, "%s || %s\n", time.Now().Format(time.RFC822), log)
}

func (s *Server) processItem(item *types.Item) (logMessage string, err error) {
	s.dataMux.Lock()
	defer s.dataMux.Unlock()

	switch item.Action {
	case types.PushHead:
		s.listFor(item.List).PushHead(item.Value)
		return fmt.Sprintf("PushHead() done. List(%s) value: %s", item.List, item.Value), nil
	case types.PushTail:
		s.listFor(item.List).PushTail(item.Value)
		return fmt.Sprintf("PushTail() done. List(%s) value: %s", item.List, item.Value), nil
	case types.PopHead, types.PopTail:
		l, ok := s.lists.Get(item.List)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNoSuchList, item.List)
		}
		var v string
		if item.Action == types.PopHead {
			v, ok = l.PopHead()
		} else {
			v, ok = l.PopTail()
		}
		return fmt.Sprintf("%s() done. List(%s) value: %s popped: %t", item.Action, item.List, v, ok), nil
	case types.InsertAfter:
		c, err := s.cursorAt(item.List, item.Position)
		if err != nil {
			return "", err
		}
		c.PushNext(item.Value)
		return fmt.Sprintf("InsertAfter() done. List(%s) position: %d value: %s", item.List, item.Position, item.Value), nil
	case types.RemoveAfter:
		c, err := s.cursorAt(item.List, item.Position)
		if err != nil {
			return "", err
		}
		v, ok := c.PopNext()
		return fmt.Sprintf("RemoveAfter() done. List(%s) position: %d value: %s removed: %t", item.List, item.Position, v, ok), nil
	case types.GetList:
		l, ok := s.lists.Get(item.List)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNoSuchList, item.List)
		}
		return fmt.Sprintf("GetList() done. List(%s) len: %d items: %s", item.List, l.Len(), l), nil
	case types.GetAllLists:
		var resp strings.Builder
		for _, name := range s.lists.Keys() {
			l, _ := s.lists.Get(name)
			fmt.Fprintf(&resp, " List(%s) len: %d", name, l.Len())
		}
		return fmt.Sprintf("GetAllLists() done.%s", resp.String()), nil
	case types.RemoveList:
		l, ok := s.lists.Get(item.List)
		if ok {
			l.Clear()
			s.lists.Delete(item.List)
		}
		return fmt.Sprintf("RemoveList() done. List(%s) deleted: %t", item.List, ok), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, item.Action)
	}
}

func (s *Server) listFor(name string) *types.List[string] {
	l, ok := s.lists.Get(name)
	if !ok {
		l = types.New[string]()
		s.lists.Set(name, l)
	}
	return l
}

// cursorAt returns a cursor on the node at position, counted from the head.
func (s *Server) cursorAt(name string, position int) (*types.Cursor[string], error) {
	l, ok := s.lists.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchList, name)
	}
	if position < 0 || l.IsEmpty() {
		return nil, fmt.Errorf("%w: %d", ErrBadPosition, position)
	}

	c := types.NewCursor(l.Head())
	if !c.Seek(position) {
		return nil, fmt.Errorf("%w: %d", ErrBadPosition, position)
	}
	return c, nil
}
