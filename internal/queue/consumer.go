package queue

import (
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// StartClientEventConsumer connects to RabbitMQ, declares the
// client.created and client.deleted queues (durable), and starts consuming
// both. Each message is appended to logs/clients.log in a single-line,
// human-friendly format. The function runs a reconnect loop; it keeps
// running and logs processing errors while rejecting the offending message
// so the server continues operating.
func StartClientEventConsumer() error {
    url := brokerURL()

    backoff := time.Second
    for {
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("client-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        if err := consumeClientEvents(conn); err != nil {
            log.Printf("client-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
            continue
        }
    }
}

func consumeClientEvents(conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("client-consumer: set QoS failed: %v", err)
    }

    for _, name := range []string{clientCreatedQueue, clientDeletedQueue} {
        if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
            return fmt.Errorf("queue declare %s: %w", name, err)
        }
    }

    created, err := ch.Consume(clientCreatedQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume %s: %w", clientCreatedQueue, err)
    }
    deleted, err := ch.Consume(clientDeletedQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume %s: %w", clientDeletedQueue, err)
    }

    for {
        select {
        case d, ok := <-created:
            if !ok {
                return errors.New("created deliveries channel closed")
            }
            handleDelivery(d.Body, handleClientCreated, &d)
        case d, ok := <-deleted:
            if !ok {
                return errors.New("deleted deliveries channel closed")
            }
            handleDelivery(d.Body, handleClientDeleted, &d)
        }
    }
}

func handleDelivery(body []byte, handle func([]byte) error, d *amqp.Delivery) {
    if err := handle(body); err != nil {
        log.Printf("client-consumer: handle message failed: %v", err)
        _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
        return
    }
    _ = d.Ack(false)
}

func handleClientCreated(body []byte) error {
    var ev ClientCreatedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    line := fmt.Sprintf("[%s] Client created | event_id=%s | client_id=%d | name=%q | city=%q | status=%s\n",
        ev.OccurredAt, ev.EventID, ev.ClientID, ev.Name, ev.City, ev.Status)
    return appendClientLog(line)
}

func handleClientDeleted(body []byte) error {
    var ev ClientDeletedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    line := fmt.Sprintf("[%s] Client deleted | event_id=%s | client_id=%d\n",
        ev.OccurredAt, ev.EventID, ev.ClientID)
    return appendClientLog(line)
}

func appendClientLog(line string) error {
    if err := os.MkdirAll("logs", 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    fpath := filepath.Join("logs", "clients.log")
    f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}
