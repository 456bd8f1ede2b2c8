package main

import (
	"flag"
	"fmt"
	"os"

	ons "github.com/zjykzk/ons-client-go"
	"github.com/zjykzk/ons-client-go/log"
)

var (
	groupID      string
	accessKey    string
	secretKey    string
	namesrvAddrs string
	channel      string
)

func init() {
	flag.StringVar(&groupID, "g", "", "group id")
	flag.StringVar(&accessKey, "a", "", "access key")
	flag.StringVar(&secretKey, "s", "", "secret key")
	flag.StringVar(&namesrvAddrs, "n", "", "name server address")
	flag.StringVar(&channel, "c", "", "channel:CLOUD/ALIYUN/ALL/LOCAL/INNER")
}

func main() {
	flag.Parse()

	p, err := ons.NewFactoryProperty(log.New(os.Stdout))
	if err != nil {
		fmt.Printf("new factory property error:%s\n", err)
		return
	}

	if groupID != "" {
		p.SetGroupID(groupID)
	}
	if namesrvAddrs != "" {
		p.SetNameServerAddr(namesrvAddrs)
	}
	if accessKey != "" {
		if err := p.SetAccessKey(accessKey); err != nil {
			fmt.Printf("set access key error:%s\n", err)
			return
		}
	}
	if secretKey != "" {
		if err := p.SetSecretKey(secretKey); err != nil {
			fmt.Printf("set secret key error:%s\n", err)
			return
		}
	}
	if channel != "" {
		if err := p.SetProperty(ons.KeyONSChannel, channel); err != nil {
			fmt.Printf("set channel error:%s\n", err)
			return
		}
	}

	fmt.Printf("channel:%s model:%s\n", p.Channel(), p.MessageModel())
	fmt.Printf("producer id:%s consumer id:%s\n", p.ProducerID(), p.ConsumerID())
	fmt.Printf("name server:%s\n", p.NameServerAddr())
	fmt.Printf("send timeout:%s suspend:%s\n", p.SendMsgTimeout(), p.SuspendDuration())
	fmt.Printf("ready:%v\n", p.Ready())
}
