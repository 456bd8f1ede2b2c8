package ons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zjykzk/ons-client-go/log"
)

func newTestProperty(t *testing.T) *FactoryProperty {
	restore := userHomeDir
	userHomeDir = func() (string, error) { return t.TempDir(), nil }
	defer func() { userHomeDir = restore }()

	p, err := NewFactoryProperty(log.MockLogger{})
	assert.Nil(t, err)
	return p
}

func TestDefaults(t *testing.T) {
	p := newTestProperty(t)

	assert.Equal(t, Clustering, p.MessageModel())
	assert.Equal(t, 3*time.Second, p.SendMsgTimeout())
	assert.Equal(t, 3*time.Second, p.SuspendDuration())
	assert.Equal(t, 1000, p.MaxMsgCacheSize())
	assert.True(t, p.TraceSwitch())
	assert.Equal(t, ChannelAliyun, p.ONSChannel())
	assert.Equal(t, "ALIYUN", p.Channel())
}

func TestSetProperty(t *testing.T) {
	p := newTestProperty(t)

	// unknown keys pass through unchecked
	assert.Nil(t, p.SetProperty("FutureKey", "whatever"))
	v, ok := p.Property("FutureKey")
	assert.True(t, ok)
	assert.Equal(t, "whatever", v)

	// rejected writes leave the store unchanged
	assert.NotNil(t, p.SetProperty(KeyMessageModel, "BAD"))
	assert.Equal(t, "CLUSTERING", p.PropertyOrDefault(KeyMessageModel, ""))

	_, ok = p.Property("NoSuchKey")
	assert.False(t, ok)
	assert.Equal(t, "fallback", p.PropertyOrDefault("NoSuchKey", "fallback"))
}

func TestMessageModel(t *testing.T) {
	p := newTestProperty(t)

	assert.Nil(t, p.SetMessageModel(Broadcasting))
	assert.Equal(t, Broadcasting, p.MessageModel())
	assert.Nil(t, p.SetMessageModel(Clustering))
	assert.Equal(t, Clustering, p.MessageModel())

	// the write side is strict
	err := p.SetMessageModel(MessageModel(99))
	assert.NotNil(t, err)
	assert.IsType(t, &ConfigError{}, err)
	assert.NotNil(t, p.SetProperty(KeyMessageModel, "clustering"))

	// the read side is lenient
	p.SetProperties(map[string]string{KeyMessageModel: "bogus"})
	assert.Equal(t, Clustering, p.MessageModel())
}

func TestONSChannel(t *testing.T) {
	p := newTestProperty(t)

	for _, c := range []ONSChannel{ChannelCloud, ChannelAliyun, ChannelAll, ChannelLocal, ChannelInner} {
		assert.Nil(t, p.SetONSChannel(c))
		assert.Equal(t, c, p.ONSChannel())
		assert.Equal(t, c.String(), p.Channel())
	}

	err := p.SetONSChannel(ONSChannel(99))
	assert.NotNil(t, err)
	assert.NotNil(t, p.SetProperty(KeyONSChannel, "CLOUDY"))

	p.SetProperties(map[string]string{KeyONSChannel: "CLOUDY"})
	assert.Equal(t, ChannelAliyun, p.ONSChannel())
}

func TestCredentialKeys(t *testing.T) {
	p := newTestProperty(t)

	assert.NotNil(t, p.SetAccessKey(""))
	assert.NotNil(t, p.SetSecretKey(""))
	assert.Equal(t, "", p.AccessKey())
	assert.Equal(t, "", p.SecretKey())

	assert.Nil(t, p.SetAccessKey("ak"))
	assert.Nil(t, p.SetSecretKey("sk"))
	assert.Equal(t, "ak", p.AccessKey())
	assert.Equal(t, "sk", p.SecretKey())

	// an empty overwrite is rejected and keeps the old value
	assert.NotNil(t, p.SetAccessKey(""))
	assert.Equal(t, "ak", p.AccessKey())
}

func TestGroupIDFallback(t *testing.T) {
	p := newTestProperty(t)

	p.SetProducerID("p1")
	p.SetConsumerID("c1")
	assert.Equal(t, "p1", p.ProducerID())
	assert.Equal(t, "c1", p.ConsumerID())

	// the group id wins even over ids set beforehand
	p.SetGroupID("g1")
	assert.Equal(t, "g1", p.GroupID())
	assert.Equal(t, "g1", p.ProducerID())
	assert.Equal(t, "g1", p.ConsumerID())

	p = newTestProperty(t)
	p.SetGroupID("g2")
	assert.Equal(t, "g2", p.ProducerID())
	assert.Equal(t, "g2", p.ConsumerID())
}

func TestSendMsgTimeout(t *testing.T) {
	p := newTestProperty(t)

	p.SetSendMsgTimeout(10 * time.Second)
	assert.Equal(t, 10*time.Second, p.SendMsgTimeout())

	p.SetSendMsgTimeoutMillis(1500)
	assert.Equal(t, 1500*time.Millisecond, p.SendMsgTimeout())

	// malformed and absent values fail soft to zero
	p.SetProperties(map[string]string{KeySendMsgTimeoutMillis: "fast"})
	assert.Equal(t, time.Duration(0), p.SendMsgTimeout())
	p.SetProperties(map[string]string{})
	assert.Equal(t, time.Duration(0), p.SendMsgTimeout())
}

func TestSuspendDuration(t *testing.T) {
	p := newTestProperty(t)

	// zero means no change requested
	p.SetSuspendDuration(0)
	assert.Equal(t, 3*time.Second, p.SuspendDuration())

	p.SetSuspendDuration(5 * time.Second)
	assert.Equal(t, 5*time.Second, p.SuspendDuration())

	p.SetSuspendDuration(0)
	assert.Equal(t, 5*time.Second, p.SuspendDuration())
}

func TestIntProperties(t *testing.T) {
	p := newTestProperty(t)

	assert.Equal(t, -1, p.SendMsgRetryTimes())
	assert.Equal(t, -1, p.ConsumeThreadNums())
	assert.Equal(t, -1, p.MaxCachedMessageSizeInMiB())

	p.SetSendMsgRetryTimes(5)
	assert.Equal(t, 5, p.SendMsgRetryTimes())
	p.SetConsumeThreadNums(16)
	assert.Equal(t, 16, p.ConsumeThreadNums())
	p.SetMaxCachedMessageSizeInMiB(512)
	assert.Equal(t, 512, p.MaxCachedMessageSizeInMiB())
	p.SetMaxMsgCacheSize(2000)
	assert.Equal(t, 2000, p.MaxMsgCacheSize())

	// a store corrupted through the bulk replace panics on read
	p.SetProperties(map[string]string{KeySendMsgRetryTimes: "many"})
	assert.Panics(t, func() { p.SendMsgRetryTimes() })
}

func TestTraceSwitch(t *testing.T) {
	p := newTestProperty(t)

	p.SetTraceSwitch(false)
	assert.False(t, p.TraceSwitch())
	p.SetTraceSwitch(true)
	assert.True(t, p.TraceSwitch())

	p.WithTraceFeature(TraceOff)
	assert.False(t, p.TraceSwitch())
	p.WithTraceFeature(TraceOn)
	assert.True(t, p.TraceSwitch())

	// anything but the exact literal counts as off
	p.SetProperties(map[string]string{KeyTraceSwitch: "TRUE"})
	assert.False(t, p.TraceSwitch())
}

func TestStringProperties(t *testing.T) {
	p := newTestProperty(t)

	p.SetNameServerAddr("10.0.0.1:9876")
	assert.Equal(t, "10.0.0.1:9876", p.NameServerAddr())
	p.SetNameServerDomain("ons.example.com")
	assert.Equal(t, "ons.example.com", p.NameServerDomain())
	p.SetInstanceID("MQ_INST_1")
	assert.Equal(t, "MQ_INST_1", p.InstanceID())
	p.SetConsumerInstanceName("worker-0")
	assert.Equal(t, "worker-0", p.ConsumerInstanceName())
	p.SetLogPath("/tmp/ons.log")
	assert.Equal(t, "/tmp/ons.log", p.LogPath())
}

func TestReady(t *testing.T) {
	p := newTestProperty(t)

	// default channel is ALIYUN, credentials are required
	assert.False(t, p.Ready())

	assert.Nil(t, p.SetAccessKey("ak"))
	assert.False(t, p.Ready())
	assert.Nil(t, p.SetSecretKey("sk"))
	assert.True(t, p.Ready())

	for _, c := range []ONSChannel{ChannelCloud, ChannelAll, ChannelLocal, ChannelInner} {
		q := newTestProperty(t)
		assert.Nil(t, q.SetONSChannel(c))
		assert.True(t, q.Ready())
	}
}

func TestProperties(t *testing.T) {
	p := newTestProperty(t)
	p.SetGroupID("g1")

	snapshot := p.Properties()
	assert.Equal(t, "g1", snapshot[KeyGroupID])

	// the snapshot is a copy
	snapshot[KeyGroupID] = "g2"
	assert.Equal(t, "g1", p.GroupID())

	p.SetProperties(map[string]string{KeyGroupID: "g3"})
	assert.Equal(t, "g3", p.GroupID())
	assert.Equal(t, -1, p.MaxMsgCacheSize())
}
