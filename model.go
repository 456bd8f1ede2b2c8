package ons

// MessageModel under the CLUSTERING model the consumers of one group share
// the queues, under BROADCASTING every consumer receives all the messages
type MessageModel int

// predefined message models
const (
	Clustering MessageModel = iota
	Broadcasting
)

// literal table of the message models, both write and read directions are
// derived from it
var messageModelLiterals = map[MessageModel]string{
	Clustering:   "CLUSTERING",
	Broadcasting: "BROADCASTING",
}

func (m MessageModel) String() string {
	return messageModelLiterals[m]
}

func parseMessageModel(literal string) (MessageModel, bool) {
	for m, l := range messageModelLiterals {
		if l == literal {
			return m, true
		}
	}
	return Clustering, false
}

// ONSChannel the channel the client connects through
type ONSChannel int

// predefined channels
const (
	ChannelCloud ONSChannel = iota
	ChannelAliyun
	ChannelAll
	ChannelLocal
	ChannelInner
)

var onsChannelLiterals = map[ONSChannel]string{
	ChannelCloud:  "CLOUD",
	ChannelAliyun: "ALIYUN",
	ChannelAll:    "ALL",
	ChannelLocal:  "LOCAL",
	ChannelInner:  "INNER",
}

func (c ONSChannel) String() string {
	return onsChannelLiterals[c]
}

func parseONSChannel(literal string) (ONSChannel, bool) {
	for c, l := range onsChannelLiterals {
		if l == literal {
			return c, true
		}
	}
	return ChannelAliyun, false
}

// Trace the message-trace feature switch
type Trace int

// trace states
const (
	TraceOn Trace = iota
	TraceOff
)
