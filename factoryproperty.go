// Package ons configures the aliyun ONS messaging client: a string property
// set with typed accessors, write-time validation and an optional credential
// bootstrap from the user home directory.
package ons

import (
	"strconv"
	"time"

	"github.com/zjykzk/ons-client-go/log"
)

// FactoryProperty holds the connection and behavior properties the client
// engine is built from. It is not safe for concurrent mutation: configure it
// in one goroutine before handing it over, or synchronize externally.
type FactoryProperty struct {
	props  map[string]string
	logger log.Logger
}

// NewFactoryProperty creates the property set seeded with the defaults and,
// when present, with the credential file under the user home directory.
// A missing or malformed credential file is skipped silently, but a field it
// does carry goes through the same validation as an explicit set, so the
// returned error is always a *ConfigError.
func NewFactoryProperty(logger log.Logger) (*FactoryProperty, error) {
	p := &FactoryProperty{props: make(map[string]string), logger: logger}
	p.setDefaults()
	if err := p.loadCredentialFile(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *FactoryProperty) setDefaults() {
	p.SetMessageModel(Clustering)
	p.SetSendMsgTimeout(3 * time.Second)
	p.SetSuspendDuration(3 * time.Second)
	p.SetProperty(KeyMaxMsgCacheSize, "1000")
	p.WithTraceFeature(TraceOn)
}

// SetProperty stores the value under the key after validation. On rejection
// the property set is left unchanged, otherwise the new value replaces any
// prior one.
func (p *FactoryProperty) SetProperty(key, value string) error {
	if err := CheckProperty(key, value); err != nil {
		return err
	}
	p.props[key] = value
	return nil
}

// Property returns the raw value stored under the key.
func (p *FactoryProperty) Property(key string) (string, bool) {
	v, ok := p.props[key]
	return v, ok
}

// PropertyOrDefault returns the raw value stored under the key, def when the
// key is absent.
func (p *FactoryProperty) PropertyOrDefault(key, def string) string {
	if v, ok := p.props[key]; ok {
		return v
	}
	return def
}

// SetProperties replaces the whole property set with a copy of props. No
// per-key validation is applied, keeping the values well formed is up to the
// caller.
func (p *FactoryProperty) SetProperties(props map[string]string) {
	m := make(map[string]string, len(props))
	for k, v := range props {
		m[k] = v
	}
	p.props = m
}

// Properties returns a snapshot copy of the property set.
func (p *FactoryProperty) Properties() map[string]string {
	m := make(map[string]string, len(p.props))
	for k, v := range p.props {
		m[k] = v
	}
	return m
}

// SetMessageModel stores the literal of the model. A value outside the
// predefined models is rejected.
func (p *FactoryProperty) SetMessageModel(m MessageModel) error {
	literal, ok := messageModelLiterals[m]
	if !ok {
		return configError("MessageModel could only be set to BROADCASTING or CLUSTERING, please set it")
	}
	return p.SetProperty(KeyMessageModel, literal)
}

// MessageModel returns the stored model. Absent or unrecognized literals
// resolve to Clustering, the read path is lenient where the write path is
// strict.
func (p *FactoryProperty) MessageModel() MessageModel {
	m, ok := parseMessageModel(p.props[KeyMessageModel])
	if !ok {
		return Clustering
	}
	return m
}

// SetONSChannel stores the literal of the channel. A value outside the
// predefined channels is rejected.
func (p *FactoryProperty) SetONSChannel(c ONSChannel) error {
	literal, ok := onsChannelLiterals[c]
	if !ok {
		return configError("ONSChannel could only be set to CLOUD/ALIYUN/ALL/LOCAL/INNER, please reset it")
	}
	return p.SetProperty(KeyONSChannel, literal)
}

// ONSChannel returns the stored channel. Absent or unrecognized literals
// resolve to ChannelAliyun.
func (p *FactoryProperty) ONSChannel() ONSChannel {
	c, ok := parseONSChannel(p.props[KeyONSChannel])
	if !ok {
		return ChannelAliyun
	}
	return c
}

// Channel returns the channel literal as stored, ALIYUN when absent.
func (p *FactoryProperty) Channel() string {
	return p.PropertyOrDefault(KeyONSChannel, DefaultChannel)
}

// SetSendMsgTimeout stores the send timeout as its millisecond count.
func (p *FactoryProperty) SetSendMsgTimeout(timeout time.Duration) {
	p.SetProperty(KeySendMsgTimeoutMillis, strconv.FormatInt(timeout.Milliseconds(), 10))
}

// SetSendMsgTimeoutMillis stores the send timeout from a raw millisecond
// count.
func (p *FactoryProperty) SetSendMsgTimeoutMillis(millis int) {
	p.SetProperty(KeySendMsgTimeoutMillis, strconv.Itoa(millis))
}

// SendMsgTimeout returns the send timeout, zero when it is absent or not a
// 32-bit integer.
func (p *FactoryProperty) SendMsgTimeout() time.Duration {
	return p.millisProperty(KeySendMsgTimeoutMillis)
}

// SetSuspendDuration stores the consuming suspend duration as its
// millisecond count. A zero duration means no change requested and keeps the
// stored value.
func (p *FactoryProperty) SetSuspendDuration(d time.Duration) {
	if d == 0 {
		return
	}
	p.SetProperty(KeySuspendTimeMillis, strconv.FormatInt(d.Milliseconds(), 10))
}

// SuspendDuration returns the consuming suspend duration, zero when it is
// absent or not a 32-bit integer.
func (p *FactoryProperty) SuspendDuration() time.Duration {
	return p.millisProperty(KeySuspendTimeMillis)
}

func (p *FactoryProperty) millisProperty(key string) time.Duration {
	v, ok := p.props[key]
	if !ok {
		return 0
	}
	millis, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0
	}
	return time.Duration(millis) * time.Millisecond
}

// SetSendMsgRetryTimes stores the send retry count.
func (p *FactoryProperty) SetSendMsgRetryTimes(times int) {
	p.SetProperty(KeySendMsgRetryTimes, strconv.Itoa(times))
}

// SendMsgRetryTimes returns the send retry count, -1 when unset.
func (p *FactoryProperty) SendMsgRetryTimes() int {
	return p.intProperty(KeySendMsgRetryTimes)
}

// SetMaxMsgCacheSize stores the consumer message cache limit, counted in
// messages.
func (p *FactoryProperty) SetMaxMsgCacheSize(size int) {
	p.SetProperty(KeyMaxMsgCacheSize, strconv.Itoa(size))
}

// MaxMsgCacheSize returns the consumer message cache limit, -1 when unset.
func (p *FactoryProperty) MaxMsgCacheSize() int {
	return p.intProperty(KeyMaxMsgCacheSize)
}

// SetMaxCachedMessageSizeInMiB stores the consumer message cache limit,
// counted in MiB.
func (p *FactoryProperty) SetMaxCachedMessageSizeInMiB(size int) {
	p.SetProperty(KeyMaxCachedMessageSizeInMiB, strconv.Itoa(size))
}

// MaxCachedMessageSizeInMiB returns the consumer message cache limit in MiB,
// -1 when unset.
func (p *FactoryProperty) MaxCachedMessageSizeInMiB() int {
	return p.intProperty(KeyMaxCachedMessageSizeInMiB)
}

// SetConsumeThreadNums stores the consuming worker count.
func (p *FactoryProperty) SetConsumeThreadNums(nums int) {
	p.SetProperty(KeyConsumeThreadNums, strconv.Itoa(nums))
}

// ConsumeThreadNums returns the consuming worker count, -1 when unset.
func (p *FactoryProperty) ConsumeThreadNums() int {
	return p.intProperty(KeyConsumeThreadNums)
}

// intProperty returns -1 when the key is absent. The typed setters only ever
// write decimal integers, a non-numeric value can reach the store through
// SetProperties alone and panics here.
func (p *FactoryProperty) intProperty(key string) int {
	v, ok := p.props[key]
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic("ons: malformed value of " + key + ":" + v)
	}
	return n
}

// WithTraceFeature switches the message-trace feature.
func (p *FactoryProperty) WithTraceFeature(t Trace) *FactoryProperty {
	switch t {
	case TraceOn:
		p.SetProperty(KeyTraceSwitch, "true")
	case TraceOff:
		p.SetProperty(KeyTraceSwitch, "false")
	}
	return p
}

// SetTraceSwitch switches the message-trace feature.
func (p *FactoryProperty) SetTraceSwitch(enabled bool) {
	if enabled {
		p.SetProperty(KeyTraceSwitch, "true")
	} else {
		p.SetProperty(KeyTraceSwitch, "false")
	}
}

// TraceSwitch reports whether the message-trace feature is on. Only the
// exact literal "true" counts, an absent key defaults to on.
func (p *FactoryProperty) TraceSwitch() bool {
	return p.PropertyOrDefault(KeyTraceSwitch, "true") == "true"
}

// SetGroupID sets the group id shared by the producer and the consumer.
func (p *FactoryProperty) SetGroupID(id string) {
	p.SetProperty(KeyGroupID, id)
}

// GroupID returns the group id, empty when unset.
func (p *FactoryProperty) GroupID() string {
	return p.PropertyOrDefault(KeyGroupID, "")
}

// SetProducerID sets the producer id, superseded by the group id once that
// is set.
func (p *FactoryProperty) SetProducerID(id string) {
	p.SetProperty(KeyProducerID, id)
}

// ProducerID returns the group id whenever it is set, falling back to the
// producer id.
func (p *FactoryProperty) ProducerID() string {
	if id, ok := p.props[KeyGroupID]; ok {
		return id
	}
	return p.PropertyOrDefault(KeyProducerID, "")
}

// SetConsumerID sets the consumer id, superseded by the group id once that
// is set.
func (p *FactoryProperty) SetConsumerID(id string) {
	p.SetProperty(KeyConsumerID, id)
}

// ConsumerID returns the group id whenever it is set, falling back to the
// consumer id.
func (p *FactoryProperty) ConsumerID() string {
	if id, ok := p.props[KeyGroupID]; ok {
		return id
	}
	return p.PropertyOrDefault(KeyConsumerID, "")
}

// SetAccessKey sets the access key, an empty one is rejected.
func (p *FactoryProperty) SetAccessKey(key string) error {
	return p.SetProperty(KeyAccessKey, key)
}

// AccessKey returns the access key, empty when unset.
func (p *FactoryProperty) AccessKey() string {
	return p.PropertyOrDefault(KeyAccessKey, "")
}

// SetSecretKey sets the secret key, an empty one is rejected.
func (p *FactoryProperty) SetSecretKey(key string) error {
	return p.SetProperty(KeySecretKey, key)
}

// SecretKey returns the secret key, empty when unset.
func (p *FactoryProperty) SecretKey() string {
	return p.PropertyOrDefault(KeySecretKey, "")
}

// SetNameServerAddr sets the name server ip addresses.
func (p *FactoryProperty) SetNameServerAddr(addr string) {
	p.SetProperty(KeyNameSrvAddr, addr)
}

// NameServerAddr returns the name server ip addresses, empty when unset.
func (p *FactoryProperty) NameServerAddr() string {
	return p.PropertyOrDefault(KeyNameSrvAddr, "")
}

// SetNameServerDomain sets the name server domain name.
func (p *FactoryProperty) SetNameServerDomain(domain string) {
	p.SetProperty(KeyONSAddr, domain)
}

// NameServerDomain returns the name server domain name, empty when unset.
func (p *FactoryProperty) NameServerDomain() string {
	return p.PropertyOrDefault(KeyONSAddr, "")
}

// SetInstanceID sets the instance id.
func (p *FactoryProperty) SetInstanceID(id string) {
	p.SetProperty(KeyInstanceID, id)
}

// InstanceID returns the instance id, empty when unset.
func (p *FactoryProperty) InstanceID() string {
	return p.PropertyOrDefault(KeyInstanceID, "")
}

// SetConsumerInstanceName sets the consumer instance name.
func (p *FactoryProperty) SetConsumerInstanceName(name string) {
	p.SetProperty(KeyConsumerInstanceName, name)
}

// ConsumerInstanceName returns the consumer instance name, empty when unset.
func (p *FactoryProperty) ConsumerInstanceName() string {
	return p.PropertyOrDefault(KeyConsumerInstanceName, "")
}

// SetLogPath sets the client log path.
func (p *FactoryProperty) SetLogPath(path string) {
	p.SetProperty(KeyLogPath, path)
}

// LogPath returns the client log path, empty when unset.
func (p *FactoryProperty) LogPath() string {
	return p.PropertyOrDefault(KeyLogPath, "")
}

// Ready reports whether the configuration is usable for connecting: the
// ALIYUN channel needs both credentials, every other channel has no
// precondition.
func (p *FactoryProperty) Ready() bool {
	if p.ONSChannel() != ChannelAliyun {
		return true
	}
	return p.AccessKey() != "" && p.SecretKey() != ""
}
