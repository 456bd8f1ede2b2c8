package ons

// property keys recognized by the factory
const (
	KeyLogPath                   = "LogPath"
	KeyProducerID                = "ProducerId"
	KeyConsumerID                = "ConsumerId"
	KeyGroupID                   = "GroupId"
	KeyAccessKey                 = "AccessKey"
	KeySecretKey                 = "SecretKey"
	KeyMessageModel              = "MessageModel"
	KeySendMsgTimeoutMillis      = "SendMsgTimeoutMillis"
	KeySuspendTimeMillis         = "SuspendTimeMillis"
	KeySendMsgRetryTimes         = "SendMsgRetryTimes"
	KeyMaxMsgCacheSize           = "MaxMsgCacheSize"
	KeyMaxCachedMessageSizeInMiB = "MaxCachedMessageSizeInMiB"
	KeyONSAddr                   = "ONSAddr"      // name server domain name
	KeyNameSrvAddr               = "NAMESRV_ADDR" // name server ip addr
	KeyConsumeThreadNums         = "ConsumeThreadNums"
	KeyONSChannel                = "OnsChannel"
	KeyTraceSwitch               = "OnsTraceSwitch"
	KeyConsumerInstanceName      = "ConsumerInstanceName"
	KeyInstanceID                = "InstanceId"
)

// DefaultChannel the channel assumed when none is configured
const DefaultChannel = "ALIYUN"
