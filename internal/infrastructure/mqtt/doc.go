// Package mqtt provides MQTT client connectivity for SpecWave Core.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// SpecWave uses MQTT as an announcement bus. The registry publishes
// discovery reports, spec registration events, and periodic statistics
// so fleet controllers and simulators can react to catalogue changes
// without polling the HTTP API.
//
//	SpecWave Core → MQTT Broker → Fleet controllers / simulators
//
// The bus is also bidirectional: publishing to the discovery request
// topic triggers a rediscovery run.
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//   - Message payloads are not encrypted beyond TLS transport
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Announce a discovery run
//	topic := client.Topics().DiscoveryReport()
//	client.Publish(topic, reportJSON, 1, false)
//
//	// React to rediscovery requests
//	client.Subscribe(client.Topics().DiscoveryRequest(), 1,
//	    func(topic string, payload []byte) error {
//	        loader.Run()
//	        return nil
//	    })
package mqtt
