package originservice

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"

	"github.com/edgewire/cdn-infra/lib/constructs/fronting"
)

var validate = validator.New()

// OriginServiceProps holds inputs for creating an OriginService.
type OriginServiceProps struct {
	Vpc awsec2.IVpc `validate:"required"`

	// Front decides which ingress rules the instance opens. Required so the
	// origin is never reachable more broadly than its front-end needs.
	Front fronting.Fronting `validate:"required"`

	// HostedZone and RecordName are optional; when both are set the service
	// gets a stable DNS name pointing at its Elastic IP.
	HostedZone awsroute53.IHostedZone
	RecordName *string

	KeyPair      awsec2.IKeyPair
	InitElements []awsec2.InitElement
	AllowSSH     bool
}

// OriginService is a single EC2-backed HTTP origin sitting behind the edge
// front-end.
type OriginService struct {
	constructs.Construct

	Instance      awsec2.Instance
	SecurityGroup awsec2.SecurityGroup
	Role          awsiam.IRole

	// Endpoint is the DNS name the front-end proxies to.
	Endpoint *string
}

// NewOriginService provisions the instance, its security group, an Elastic IP,
// and an optional DNS record.
func NewOriginService(scope constructs.Construct, id string, props *OriginServiceProps) *OriginService {
	if err := validate.Struct(props); err != nil {
		panic(fmt.Errorf("invalid OriginService props: %w", err))
	}

	node := constructs.NewConstruct(scope, jsii.String(id))
	svc := &OriginService{Construct: node}

	sg := awsec2.NewSecurityGroup(node, jsii.String("SG"), &awsec2.SecurityGroupProps{
		Vpc:              props.Vpc,
		AllowAllOutbound: jsii.Bool(true),
		Description:      jsii.String("Origin service security group."),
	})
	for _, spec := range props.Front.IngressRules() {
		sg.AddIngressRule(
			peerFromSource(spec.Source),
			awsec2.NewPort(&awsec2.PortProps{
				Protocol:             spec.Protocol,
				FromPort:             jsii.Number(spec.FromPort),
				ToPort:               jsii.Number(spec.ToPort),
				StringRepresentation: jsii.String(spec.Description),
			}),
			jsii.String(spec.Description),
			jsii.Bool(false))
	}
	if props.AllowSSH {
		sg.AddIngressRule(
			awsec2.Peer_AnyIpv4(),
			awsec2.Port_Tcp(jsii.Number(22)),
			jsii.String("Allow ssh."),
			jsii.Bool(false))
	}
	svc.SecurityGroup = sg

	role := awsiam.NewRole(node, jsii.String("Role"), &awsiam.RoleProps{
		AssumedBy: awsiam.NewServicePrincipal(jsii.String("ec2.amazonaws.com"), nil),
	})
	svc.Role = role

	var initData awsec2.CloudFormationInit
	if len(props.InitElements) > 0 {
		initData = awsec2.CloudFormationInit_FromElements(props.InitElements...)
	}

	instance := awsec2.NewInstance(node, jsii.String("Instance"), &awsec2.InstanceProps{
		InstanceType:  awsec2.InstanceType_Of(awsec2.InstanceClass_T3, awsec2.InstanceSize_SMALL),
		MachineImage:  awsec2.MachineImage_LatestAmazonLinux2(nil),
		Vpc:           props.Vpc,
		VpcSubnets:    &awsec2.SubnetSelection{SubnetType: awsec2.SubnetType_PUBLIC},
		SecurityGroup: sg,
		Role:          role,
		Init:          initData,
		KeyPair:       props.KeyPair,
	})
	svc.Instance = instance

	eip := awsec2.NewCfnEIP(node, jsii.String("EIP"), &awsec2.CfnEIPProps{})
	awsec2.NewCfnEIPAssociation(node, jsii.String("EIPAssociation"), &awsec2.CfnEIPAssociationProps{
		InstanceId:   instance.InstanceId(),
		AllocationId: eip.AttrAllocationId(),
	})

	if props.HostedZone != nil && props.RecordName != nil {
		awsroute53.NewARecord(node, jsii.String("Record"), &awsroute53.ARecordProps{
			Zone:       props.HostedZone,
			RecordName: props.RecordName,
			Ttl:        awscdk.Duration_Minutes(jsii.Number(5)),
			Target:     awsroute53.RecordTarget_FromIpAddresses(eip.AttrPublicIp()),
		})
		svc.Endpoint = jsii.String(*props.RecordName + "." + *props.HostedZone.ZoneName())
	} else {
		svc.Endpoint = instance.InstancePublicDnsName()
	}

	return svc
}

func peerFromSource(source string) awsec2.IPeer {
	switch {
	case strings.HasPrefix(source, "pl-"):
		return awsec2.Peer_PrefixList(jsii.String(source))
	case source == "0.0.0.0/0":
		return awsec2.Peer_AnyIpv4()
	default:
		return awsec2.Peer_Ipv4(jsii.String(source))
	}
}
