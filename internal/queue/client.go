package queue

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/salon-next/internal/config"
	"github.com/salon-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	DefaultQueue  = constants.QueueDefault
	CriticalQueue = constants.QueueCritical

	notifyMaxRetry = 5
	notifyTimeout  = 30 * time.Second
)

// Enqueuer 投递端抽象，生产环境为 *asynq.Client，测试中替换为记录器
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client 预约通知任务的投递入口；nil 或未启用时所有投递都是空操作
type Client struct {
	enq Enqueuer
}

// NewClient 队列关闭时返回一个空操作客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{}, nil
	}
	return NewClientWith(asynq.NewClient(redisOpt(cfg))), nil
}

func NewClientWith(enq Enqueuer) *Client {
	return &Client{enq: enq}
}

func (c *Client) Enabled() bool {
	return c != nil && c.enq != nil
}

func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.enq.Close()
}

func (c *Client) enqueue(taskType string, payload interface{}, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := newTask(taskType, payload)
	if err != nil {
		return err
	}
	base := []asynq.Option{asynq.MaxRetry(notifyMaxRetry), asynq.Timeout(notifyTimeout)}
	_, err = c.enq.Enqueue(task, append(base, opts...)...)
	return err
}

// EnqueueBookingConfirmation 新预约确认通知，走高优先级队列
func (c *Client) EnqueueBookingConfirmation(payload BookingConfirmationPayload, opts ...asynq.Option) error {
	return c.enqueue(TaskBookingConfirmation, payload, append([]asynq.Option{asynq.Queue(CriticalQueue)}, opts...)...)
}

// EnqueueBookingStatusNotify 预约状态变更通知
func (c *Client) EnqueueBookingStatusNotify(payload BookingStatusNotifyPayload, opts ...asynq.Option) error {
	return c.enqueue(TaskBookingStatusNotify, payload, append([]asynq.Option{asynq.Queue(DefaultQueue)}, opts...)...)
}

// EnqueueBookingReminder 在 delay 后提醒；同一预约只保留一个提醒任务
func (c *Client) EnqueueBookingReminder(payload BookingReminderPayload, delay time.Duration) error {
	err := c.enqueue(TaskBookingReminder, payload,
		asynq.Queue(DefaultQueue),
		asynq.ProcessIn(max(delay, 0)),
		asynq.TaskID(TaskBookingReminder+":"+payload.BookingID),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

// BuildServerConfig 消费端连接与并发配置，critical 队列权重高于 default
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	serverCfg := asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{CriticalQueue: 6, DefaultQueue: 3},
	}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			serverCfg.Concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			serverCfg.Queues = cfg.Queues
		}
	}
	return redisOpt(cfg), serverCfg
}

func redisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	opt := asynq.RedisClientOpt{Addr: "127.0.0.1:6379"}
	if cfg == nil {
		return opt
	}
	host, port := strings.TrimSpace(cfg.Host), cfg.Port
	if host == "" {
		host = "127.0.0.1"
	}
	if port <= 0 {
		port = 6379
	}
	opt.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	opt.Password = cfg.Password
	opt.DB = cfg.DB
	return opt
}
